package obsservice

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the cardinality of a parameter. It decides both how the parameter
// is materialized from the command line, and the markup it gets in the
// service descriptor. The only values are Required, Optional, Multi and Flag.
type Kind interface {
	fmt.Stringer
	appendXML(b *strings.Builder)
	materialize(p Param, raw []string) (interface{}, error)
}

var (
	// Must be given exactly once.
	Required Kind = requiredKind{}
	// Given at most once. Materializes to a pointer, nil when absent.
	Optional Kind = optionalKind{}
	// Given any number of times. Materializes to a slice in command line order.
	Multi Kind = multiKind{}
	// A boolean given at most once as one of the flag tokens. False when absent.
	Flag Kind = flagKind{}
)

var kinds = []Kind{Required, Optional, Multi, Flag}

func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return nil, fmt.Errorf("unknown parameter kind %q", s)
}

// The values accepted for a Flag, in the order they're advertised.
var flagTokens = []struct {
	text  string
	value bool
}{
	{"true", true}, {"yes", true}, {"on", true}, {"1", true},
	{"false", false}, {"no", false}, {"off", false}, {"0", false},
}

func parseFlagToken(s string) (bool, error) {
	s = strings.ToLower(s)
	texts := make([]string, 0, len(flagTokens))
	for _, t := range flagTokens {
		if s == t.text {
			return t.value, nil
		}
		texts = append(texts, t.text)
	}
	return false, fmt.Errorf("expected one of %s", strings.Join(texts, ", "))
}

// Converts the single raw value of a parameter that may appear at most once.
func singleValue(p Param, raw []string) (reflect.Value, error) {
	if len(raw) > 1 {
		return reflect.Value{}, MultipleOccurrencesError{p.Name}
	}
	return p.unmarshal(raw[0])
}

type requiredKind struct{}

func (requiredKind) String() string { return "required" }

func (requiredKind) appendXML(b *strings.Builder) {
	b.WriteString("    <required/>\n")
}

func (requiredKind) materialize(p Param, raw []string) (interface{}, error) {
	if len(raw) == 0 {
		return nil, MissingRequiredOptionError{p.Name}
	}
	v, err := singleValue(p, raw)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

type optionalKind struct{}

func (optionalKind) String() string { return "optional" }

func (optionalKind) appendXML(*strings.Builder) {}

func (optionalKind) materialize(p Param, raw []string) (interface{}, error) {
	ptr := reflect.New(p.Type)
	if len(raw) == 0 {
		return reflect.Zero(ptr.Type()).Interface(), nil
	}
	v, err := singleValue(p, raw)
	if err != nil {
		return nil, err
	}
	ptr.Elem().Set(v)
	return ptr.Interface(), nil
}

type multiKind struct{}

func (multiKind) String() string { return "multi" }

func (multiKind) appendXML(b *strings.Builder) {
	b.WriteString("    <allowmultiple/>\n")
}

func (multiKind) materialize(p Param, raw []string) (interface{}, error) {
	s := reflect.MakeSlice(reflect.SliceOf(p.Type), 0, len(raw))
	for _, r := range raw {
		v, err := p.unmarshal(r)
		if err != nil {
			return nil, err
		}
		s = reflect.Append(s, v)
	}
	return s.Interface(), nil
}

type flagKind struct{}

func (flagKind) String() string { return "flag" }

func (flagKind) appendXML(b *strings.Builder) {
	for _, t := range flagTokens {
		b.WriteString("    <allowedvalue>")
		b.WriteString(t.text)
		b.WriteString("</allowedvalue>\n")
	}
}

func (flagKind) materialize(p Param, raw []string) (interface{}, error) {
	if len(raw) == 0 {
		return false, nil
	}
	v, err := singleValue(p, raw)
	if err != nil {
		return nil, err
	}
	return v.Bool(), nil
}
