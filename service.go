package obsservice

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// The help flag was given, and usage should be shown instead of running.
	ErrDefaultHelp = errors.New("help flag")
	// The xml flag was given, and the descriptor should be shown instead of
	// running.
	ErrXML = errors.New("xml flag")
)

const flagPrefix = "--"

var osExit = os.Exit

// ParseErr parses args against the schema. If help or the descriptor is
// requested, ErrDefaultHelp or ErrXML is returned without checking any
// parameters.
func (s *Schema) ParseErr(args []string, opts ...ParseOpt) (*Values, error) {
	return newParser(s, opts...).parse(args)
}

// Parse is like ParseErr, but handles --help and --xml by printing to stdout
// and exiting the process with status 0. Other errors, including failing to
// write the descriptor, are returned.
func (s *Schema) Parse(args []string, opts ...ParseOpt) (*Values, error) {
	p := newParser(s, opts...)
	vs, err := p.parse(args)
	switch err {
	case ErrDefaultHelp:
		s.WriteUsage(p.stdout, opts...)
		osExit(0)
	case ErrXML:
		if _, err := io.WriteString(p.stdout, s.xml); err != nil {
			return nil, errors.Wrap(err, "writing descriptor")
		}
		osExit(0)
	}
	return vs, err
}

// ParseArgs declares a service from the tagged fields of cmd, parses args with
// Schema.Parse, and stores the values in cmd.
func ParseArgs(svc Service, cmd interface{}, args []string, opts ...ParseOpt) error {
	s, err := StructSchema(svc, cmd)
	if err != nil {
		return err
	}
	vs, err := s.Parse(args, opts...)
	if err != nil {
		return err
	}
	return vs.Bind(cmd)
}

// Parse runs ParseArgs on the process arguments. Errors are reported to
// stderr, and the process exits with status 2 for command line errors and 1
// for anything else.
func Parse(svc Service, cmd interface{}, opts ...ParseOpt) {
	opts = append([]ParseOpt{Program(filepath.Base(os.Args[0]))}, opts...)
	err := ParseArgs(svc, cmd, os.Args[1:], opts...)
	if err == nil {
		return
	}
	p := &parser{stderr: os.Stderr}
	for _, opt := range opts {
		opt(p)
	}
	fmt.Fprintf(p.stderr, "%s: Error: %s\n", p.program, err)
	if IsUserError(err) {
		osExit(2)
		return
	}
	osExit(1)
}
