package obsservice

import (
	"fmt"
	"io"

	"github.com/anacrolix/missinggo/v2"
)

// Writes the text shown for --help.
func (s *Schema) WriteUsage(w io.Writer, opts ...ParseOpt) {
	newParser(s, opts...).writeUsage(w)
}

func (p *parser) writeUsage(w io.Writer) {
	svc := p.schema.service
	fmt.Fprintf(w, "Usage:\n  %s [OPTIONS...]\n", p.program)
	if svc.Summary != "" {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(svc.Summary))
	}
	if svc.Description != "" && svc.Description != svc.Summary {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(svc.Description))
	}
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprint(w, p.flagSet.FlagUsages())
}
