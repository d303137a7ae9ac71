package obsservice

import (
	"reflect"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// A struct field that receives a parameter.
type structField struct {
	name   string
	value  reflect.Value
	param  Param
	outdir bool
}

// StructSchema declares a service whose parameters are the fields of the
// struct pointed to by cmd.
//
// Supported tags:
//
//	name: the option name. Derived from the field name if absent, "-" skips the field
//	help: the parameter's description
//	kind: required, optional, multi or flag. Inferred from the field type if
//	      absent: *T is optional, []T is multi, bool is a flag, and anything
//	      else is required
//
// A Path field named outdir receives the builtin --outdir, which is then
// required.
func StructSchema(svc Service, cmd interface{}) (*Schema, error) {
	fields, err := structFields(cmd)
	if err != nil {
		return nil, err
	}
	var params []Param
	for _, f := range fields {
		if !f.outdir {
			params = append(params, f.param)
		}
	}
	return NewSchema(svc, params...)
}

// Bind stores the values in the tagged fields of the struct pointed to by cmd.
func (vs *Values) Bind(cmd interface{}) error {
	fields, err := structFields(cmd)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if f.outdir {
			outdir, err := vs.Outdir()
			if err != nil {
				return err
			}
			f.value.SetString(string(outdir))
			continue
		}
		v, err := vs.Get(f.param.Name)
		if err != nil {
			return errors.Wrapf(err, "binding field %s", f.name)
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(f.value.Type()) {
			// Only between types of the same kind, like bool and a named bool.
			if rv.Kind() != f.value.Kind() || !rv.Type().ConvertibleTo(f.value.Type()) {
				return logicErrorf("can't bind %s to field %s of type %s", rv.Type(), f.name, f.value.Type())
			}
			rv = rv.Convert(f.value.Type())
		}
		f.value.Set(rv)
	}
	return nil
}

func structFields(cmd interface{}) (fields []structField, err error) {
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, logicErrorf("expected pointer to struct, got %T", cmd)
	}
	err = addStructFields(&fields, v.Elem())
	return
}

// Embedded structs without a name tag contribute their fields directly.
func addStructFields(fields *[]structField, st reflect.Value) (err error) {
	foreachStructField(st, func(fv reflect.Value, sf reflect.StructField) (stop bool) {
		name := sf.Tag.Get("name")
		if name == "-" {
			return false
		}
		if sf.Anonymous && fv.Kind() == reflect.Struct && name == "" {
			err = addStructFields(fields, fv)
			if err != nil {
				err = errors.Wrapf(err, "embedded %s", sf.Name)
			}
			return err != nil
		}
		if !sf.IsExported() {
			return false
		}
		if name == "" {
			name = fieldFlagName(sf.Name)
		}
		f := structField{name: sf.Name, value: fv}
		if name == outdirFlag && fv.Type() == pathType {
			f.outdir = true
			*fields = append(*fields, f)
			return false
		}
		f.param, err = fieldParam(name, sf)
		if err != nil {
			err = errors.Wrapf(err, "field %s", sf.Name)
			return true
		}
		*fields = append(*fields, f)
		return false
	})
	return
}

func fieldParam(name string, sf reflect.StructField) (Param, error) {
	p := Param{
		Name:        name,
		Description: sf.Tag.Get("help"),
	}
	t := sf.Type
	if tag := sf.Tag.Get("kind"); tag != "" {
		k, err := ParseKind(tag)
		if err != nil {
			return p, err
		}
		p.Kind = k
		switch k {
		case Optional:
			if t.Kind() != reflect.Ptr {
				return p, logicErrorf("optional param %q needs a pointer, not %s", name, t)
			}
			p.Type = t.Elem()
		case Multi:
			if t.Kind() != reflect.Slice {
				return p, logicErrorf("multi param %q needs a slice, not %s", name, t)
			}
			p.Type = t.Elem()
		default:
			p.Type = t
		}
		return p, nil
	}
	switch {
	case t.Kind() == reflect.Bool:
		p.Kind, p.Type = Flag, t
	case canMarshal(t):
		p.Kind, p.Type = Required, t
	case t.Kind() == reflect.Ptr:
		p.Kind, p.Type = Optional, t.Elem()
	case t.Kind() == reflect.Slice:
		p.Kind, p.Type = Multi, t.Elem()
	default:
		return p, logicErrorf("field has bad type: %v", t)
	}
	return p, nil
}

// Turns a struct field name into an option name, like TCPAddr into tcp-addr.
func fieldFlagName(fieldName string) string {
	return strings.Replace(xstrings.ToSnakeCase(fieldName), "_", "-", -1)
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		sf := t.Field(i)
		fv := _struct.Field(i)
		if f(fv, sf) {
			break
		}
	}
}
