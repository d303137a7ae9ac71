package obsservice

import (
	"fmt"
)

// Values holds the materialized parameters from one command line. Required
// parameters are stored as T, Optional as *T (nil when absent), Multi as []T
// and Flag as bool.
type Values struct {
	schema *Schema
	values map[string]interface{}
	outdir *Path
}

func (vs *Values) Schema() *Schema {
	return vs.schema
}

// Get returns the value of the named parameter, or of the builtin outdir.
func (vs *Values) Get(name string) (interface{}, error) {
	if name == outdirFlag {
		return vs.Outdir()
	}
	v, ok := vs.values[name]
	if !ok {
		return nil, logicErrorf("service %q has no param %q", vs.schema.service.Name, name)
	}
	return v, nil
}

// Outdir returns the --outdir value. It's an error to read it when it wasn't
// given.
func (vs *Values) Outdir() (Path, error) {
	if vs.outdir == nil {
		return "", MissingRequiredOptionError{outdirFlag}
	}
	return *vs.outdir, nil
}

// Lookup returns the named parameter's value as a T.
func Lookup[T any](vs *Values, name string) (T, error) {
	var t T
	v, err := vs.Get(name)
	if err != nil {
		return t, err
	}
	t, ok := v.(T)
	if !ok {
		return t, logicErrorf("param %q is %T, not %T", name, v, t)
	}
	return t, nil
}

func MustLookup[T any](vs *Values, name string) T {
	t, err := Lookup[T](vs, name)
	if err != nil {
		panic(fmt.Sprintf("obsservice: %s", err))
	}
	return t
}
