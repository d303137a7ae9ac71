package obsservice

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Marshaler is implemented by parameter types that parse their own command
// line values.
type Marshaler interface {
	Marshal(in string) error
}

type marshaler interface {
	Marshal(reflect.Value, string) error
}

type dynamicMarshaler struct {
	marshal func(reflect.Value, string) error
}

func (me dynamicMarshaler) Marshal(v reflect.Value, s string) error {
	return me.marshal(v, s)
}

var (
	marshalerType       = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Returns nil if values of type t can't be set from a string.
func valueMarshaler(t reflect.Type) marshaler {
	if f, ok := typeMarshalFuncs[t]; ok {
		return dynamicMarshaler{f}
	}
	if reflect.PtrTo(t).Implements(marshalerType) {
		return dynamicMarshaler{func(v reflect.Value, s string) error {
			return v.Addr().Interface().(Marshaler).Marshal(s)
		}}
	}
	if reflect.PtrTo(t).Implements(textUnmarshalerType) {
		return dynamicMarshaler{func(v reflect.Value, s string) error {
			return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
		}}
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return defaultMarshaler{}
	}
	return nil
}

func canMarshal(t reflect.Type) bool {
	return t != nil && valueMarshaler(t) != nil
}

// Parses s into a new value of type t.
func unmarshalValue(t reflect.Type, s string) (reflect.Value, error) {
	m := valueMarshaler(t)
	if m == nil {
		return reflect.Value{}, fmt.Errorf("can't set type %s", t)
	}
	v := reflect.New(t).Elem()
	err := m.Marshal(v, s)
	return v, err
}

// The fallback marshaler for builtin kinds. Unlike fmt.Sscan it takes the
// whole string, so values may contain spaces.
type defaultMarshaler struct{}

func (defaultMarshaler) Marshal(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := parseFlagToken(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		panic(v.Kind())
	}
	return nil
}
