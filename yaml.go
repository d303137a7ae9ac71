package obsservice

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlSchema struct {
	Name        string      `yaml:"name"`
	Summary     string      `yaml:"summary"`
	Description string      `yaml:"description"`
	Parameters  []yamlParam `yaml:"parameters"`
}

type yamlParam struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	Type        string `yaml:"type"`
}

// LoadSchema reads a schema declared in YAML, for example:
//
//	name: example
//	summary: Example service
//	description: An example service that prints its parameters.
//	parameters:
//	  - name: p1
//	    description: String parameter [required]
//	  - name: p2
//	    description: Integer parameter [optional]
//	    kind: optional
//	    type: uint
//
// kind defaults to required, and type to string, or bool for flags.
func LoadSchema(r io.Reader) (*Schema, error) {
	var ys yamlSchema
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&ys); err != nil {
		return nil, errors.Wrap(err, "decoding schema")
	}
	params := make([]Param, 0, len(ys.Parameters))
	for _, yp := range ys.Parameters {
		p, err := yp.param()
		if err != nil {
			return nil, errors.Wrapf(err, "param %q", yp.Name)
		}
		params = append(params, p)
	}
	return NewSchema(Service{
		Name:        ys.Name,
		Summary:     ys.Summary,
		Description: ys.Description,
	}, params...)
}

func (yp yamlParam) param() (p Param, err error) {
	p.Name = yp.Name
	p.Description = yp.Description
	p.Kind = Required
	if yp.Kind != "" {
		p.Kind, err = ParseKind(yp.Kind)
		if err != nil {
			return
		}
	}
	tn := yp.Type
	if tn == "" {
		tn = "string"
		if p.Kind == Flag {
			tn = "bool"
		}
	}
	p.Type, err = typeByName(tn)
	return
}

func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := LoadSchema(f)
	return s, errors.Wrap(err, path)
}
