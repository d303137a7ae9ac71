// Command obs-service-xml compiles YAML service schemas into the .service
// descriptors that OBS installs alongside each service.
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/anacrolix/obsservice"
	"github.com/pkg/errors"
)

var service = obsservice.Service{
	Name:        "obs-service-xml",
	Summary:     "Generate service descriptors",
	Description: "Compiles YAML service schemas into .service descriptor files.",
}

type params struct {
	Schema []obsservice.Path `help:"YAML schema file to compile [multiple]"`
	Stdout bool              `help:"write descriptors to standard output instead of --outdir"`
}

func main() {
	program := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(program + ": ")
	if err := run(os.Args[1:], os.Stdout, obsservice.Program(program)); err != nil {
		log.Fatalf("Error: %s", err)
	}
}

func run(args []string, w io.Writer, opts ...obsservice.ParseOpt) error {
	var p params
	s, err := obsservice.StructSchema(service, &p)
	if err != nil {
		return err
	}
	vs, err := s.Parse(args, opts...)
	if err != nil {
		return err
	}
	if err := vs.Bind(&p); err != nil {
		return err
	}
	if len(p.Schema) == 0 {
		return errors.New("no --schema given")
	}
	// Only needed when writing files.
	var outdir obsservice.Path
	if !p.Stdout {
		outdir, err = vs.Outdir()
		if err != nil {
			return err
		}
	}
	for _, path := range p.Schema {
		schema, err := obsservice.LoadSchemaFile(path.String())
		if err != nil {
			return err
		}
		if p.Stdout {
			if _, err := io.WriteString(w, schema.XML()); err != nil {
				return errors.Wrapf(err, "writing descriptor for %s", path)
			}
			continue
		}
		written, err := schema.WriteServiceFile(outdir.String())
		if err != nil {
			return errors.Wrapf(err, "writing descriptor for %s", path)
		}
		log.Printf("wrote %s", written)
	}
	return nil
}
