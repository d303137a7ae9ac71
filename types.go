package obsservice

import (
	"encoding"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/dustin/go-humanize"
)

// A filesystem path, such as the output directory every OBS service is given.
type Path string

func (me Path) String() string {
	return string(me)
}

var pathType = reflect.TypeOf(Path(""))

// A size parameter given in human units, like 100MB or 2GiB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var (
	_ Marshaler                = (*Bytes)(nil)
	_ encoding.TextUnmarshaler = (*Bytes)(nil)
)

func (me *Bytes) Marshal(s string) error {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*me = Bytes(ui64)
	return nil
}

func (me *Bytes) UnmarshalText(text []byte) error {
	return me.Marshal(string(text))
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

var typeMarshalFuncs = map[reflect.Type]func(settee reflect.Value, arg string) error{}

func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	t := v.Type()
	setType := t.Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, arg string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		if len(out) > 1 {
			i := out[1].Interface()
			if i != nil {
				return i.(error)
			}
		}
		settee.Set(out[0])
		return nil
	}
}

func init() {
	addMarshalFunc(func(urlStr string) (*url.URL, error) {
		return url.Parse(urlStr)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addMarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, fmt.Errorf("not an IP address")
		}
		return ip, nil
	})
}

// Element types that can be named in schema files.
var namedTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"int":      reflect.TypeOf(int(0)),
	"int64":    reflect.TypeOf(int64(0)),
	"uint":     reflect.TypeOf(uint(0)),
	"uint64":   reflect.TypeOf(uint64(0)),
	"float64":  reflect.TypeOf(float64(0)),
	"bool":     reflect.TypeOf(false),
	"path":     pathType,
	"bytes":    reflect.TypeOf(Bytes(0)),
	"duration": reflect.TypeOf(time.Duration(0)),
	"url":      reflect.TypeOf((*url.URL)(nil)),
	"ip":       reflect.TypeOf(net.IP(nil)),
}

func typeByName(name string) (reflect.Type, error) {
	t, ok := namedTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}

// The placeholder shown for a type in usage.
func typeName(t reflect.Type) string {
	for name, nt := range namedTypes {
		if nt == t {
			return name
		}
	}
	return t.String()
}
