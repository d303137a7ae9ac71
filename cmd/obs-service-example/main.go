// Command obs-service-example is a service that prints its parameters.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/anacrolix/obsservice"
)

var service = obsservice.Service{
	Name:        "example",
	Summary:     "Example service",
	Description: "An example service that prints its parameters.",
}

type params struct {
	P1 string   `name:"p1" help:"String parameter [required]"`
	P2 *uint    `name:"p2" help:"Integer parameter [optional]"`
	P3 []string `name:"p3" help:"Another string parameter [multiple]"`
	P4 bool     `name:"p4" help:"Boolean parameter"`
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
	if err := obsservice.ParseArgs(service, &p, args, opts...); err != nil {
		return err
	}
	fmt.Fprintf(w, "p1 = %s\n", p.P1)
	if p.P2 != nil {
		fmt.Fprintf(w, "p2 = %d\n", *p.P2)
	} else {
		fmt.Fprintln(w, "p2 is absent")
	}
	fmt.Fprintln(w, "p3:")
	for _, s := range p.P3 {
		fmt.Fprintln(w, s)
	}
	fmt.Fprintf(w, "p4 = %t\n", p.P4)
	return nil
}
