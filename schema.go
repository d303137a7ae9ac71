package obsservice

import (
	"reflect"
	"regexp"
)

// Service is the metadata published in the descriptor.
type Service struct {
	Name        string
	Summary     string
	Description string
}

// Schema is a compiled, immutable service declaration.
type Schema struct {
	service Service
	params  []Param
	byName  map[string]int
	xml     string
}

// Names that every schema provides itself.
const (
	helpFlag   = "help"
	xmlFlag    = "xml"
	outdirFlag = "outdir"
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func NewSchema(svc Service, params ...Param) (*Schema, error) {
	if !nameRegexp.MatchString(svc.Name) {
		return nil, logicErrorf("bad service name: %q", svc.Name)
	}
	s := &Schema{
		service: svc,
		params:  append([]Param(nil), params...),
		byName:  make(map[string]int, len(params)),
	}
	for i, p := range s.params {
		if err := checkParam(p); err != nil {
			return nil, err
		}
		if _, ok := s.byName[p.Name]; ok {
			return nil, logicErrorf("param %q defined more than once", p.Name)
		}
		s.byName[p.Name] = i
	}
	s.xml = s.buildXML()
	return s, nil
}

func MustSchema(svc Service, params ...Param) *Schema {
	s, err := NewSchema(svc, params...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkParam(p Param) error {
	if !nameRegexp.MatchString(p.Name) {
		return logicErrorf("bad param name: %q", p.Name)
	}
	switch p.Name {
	case helpFlag, xmlFlag, outdirFlag:
		return logicErrorf("param name %q is reserved", p.Name)
	}
	if p.Kind == nil {
		return logicErrorf("param %q has no kind", p.Name)
	}
	if !canMarshal(p.Type) {
		return logicErrorf("param %q has unsupported type %v", p.Name, p.Type)
	}
	if p.Kind == Flag && p.Type.Kind() != reflect.Bool {
		return logicErrorf("flag param %q must be bool, not %v", p.Name, p.Type)
	}
	return nil
}

func (s *Schema) Service() Service {
	return s.service
}

// The parameters in declaration order.
func (s *Schema) Params() []Param {
	return append([]Param(nil), s.params...)
}

func (s *Schema) Param(name string) (Param, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Param{}, false
	}
	return s.params[i], true
}
