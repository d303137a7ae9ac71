package obsservice

import (
	"reflect"
)

// Param describes one service parameter. Type is the type of a single value:
// the pointee for Optional, and the element for Multi.
type Param struct {
	Name        string
	Description string
	Kind        Kind
	Type        reflect.Type
}

func RequiredParam[T any](name, description string) Param {
	return Param{name, description, Required, reflect.TypeOf((*T)(nil)).Elem()}
}

func OptionalParam[T any](name, description string) Param {
	return Param{name, description, Optional, reflect.TypeOf((*T)(nil)).Elem()}
}

func MultiParam[T any](name, description string) Param {
	return Param{name, description, Multi, reflect.TypeOf((*T)(nil)).Elem()}
}

func FlagParam(name, description string) Param {
	return Param{name, description, Flag, reflect.TypeOf(false)}
}

func (p Param) unmarshal(s string) (reflect.Value, error) {
	v, err := unmarshalValue(p.Type, s)
	if err != nil {
		return reflect.Value{}, MalformedValueError{Name: p.Name, Value: s, Err: err}
	}
	return v, nil
}
