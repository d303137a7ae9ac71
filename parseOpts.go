package obsservice

import "io"

// ParseOpt configures how a schema is parsed and reported.
type ParseOpt func(p *parser)

// Sets the program name shown in usage and error messages. It defaults to the
// service name.
func Program(program string) ParseOpt {
	return func(p *parser) {
		p.program = program
	}
}

// Where usage and the descriptor are written when requested. Defaults to
// os.Stdout.
func Stdout(w io.Writer) ParseOpt {
	return func(p *parser) {
		p.stdout = w
	}
}

// Where Parse reports errors. Defaults to os.Stderr.
func Stderr(w io.Writer) ParseOpt {
	return func(p *parser) {
		p.stderr = w
	}
}
