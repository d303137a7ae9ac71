package obsservice

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

type parser struct {
	schema  *Schema
	program string
	stdout  io.Writer
	stderr  io.Writer

	flagSet *pflag.FlagSet
	args    map[string]*arg
	outdir  arg
	help    bool
	xml     bool
}

// Builtin outdir, materialized like any other optional parameter.
var outdirParam = Param{
	Name:        outdirFlag,
	Description: "output directory",
	Kind:        Optional,
	Type:        pathType,
}

func newParser(s *Schema, opts ...ParseOpt) *parser {
	p := &parser{
		schema:  s,
		program: s.service.Name,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.addFlags()
	return p
}

func (p *parser) addFlags() {
	fs := pflag.NewFlagSet(p.program, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	p.args = make(map[string]*arg, len(p.schema.params))
	for _, param := range p.schema.params {
		a := &arg{_type: argType(param)}
		p.args[param.Name] = a
		fs.Var(a, param.Name, param.Description)
	}
	p.outdir._type = argType(outdirParam)
	fs.Var(&p.outdir, outdirParam.Name, outdirParam.Description)
	fs.BoolVarP(&p.help, helpFlag, "h", false, "produce help message")
	fs.BoolVar(&p.xml, xmlFlag, false, "print the service descriptor XML")
	p.flagSet = fs
}

func (p *parser) parse(args []string) (*Values, error) {
	if err := p.flagSet.Parse(args); err != nil {
		return nil, userError{err.Error()}
	}
	if p.help {
		return nil, ErrDefaultHelp
	}
	if p.xml {
		return nil, ErrXML
	}
	if p.flagSet.NArg() != 0 {
		return nil, userError{fmt.Sprintf("excess argument: %q", p.flagSet.Arg(0))}
	}
	return p.materialize()
}

// Parameters are materialized in declaration order, and the first error is
// returned.
func (p *parser) materialize() (*Values, error) {
	vs := &Values{
		schema: p.schema,
		values: make(map[string]interface{}, len(p.schema.params)),
	}
	for _, param := range p.schema.params {
		v, err := param.Kind.materialize(param, p.args[param.Name].values)
		if err != nil {
			return nil, err
		}
		vs.values[param.Name] = v
	}
	outdir, err := outdirParam.Kind.materialize(outdirParam, p.outdir.values)
	if err != nil {
		return nil, err
	}
	vs.outdir = outdir.(*Path)
	return vs, nil
}
