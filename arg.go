package obsservice

import (
	"strings"

	"github.com/spf13/pflag"
)

// Collects the raw values given for a flag. Conversion is left to
// materialization, so that missing and malformed values are reported the same
// way regardless of which flag parser saw them.
type arg struct {
	_type  string
	values []string
}

var _ pflag.Value = (*arg)(nil)

func (me *arg) String() string {
	return strings.Join(me.values, ",")
}

func (me *arg) Set(s string) error {
	me.values = append(me.values, s)
	return nil
}

func (me *arg) Type() string {
	return me._type
}

// The placeholder pflag shows after the flag in usage.
func argType(p Param) string {
	if p.Kind == Flag {
		return "boolean"
	}
	return typeName(p.Type)
}
