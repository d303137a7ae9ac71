// Package obsservice declares the parameters of an Open Build Service source
// service once, and derives from them the command line parsing, the
// <name>.service XML descriptor that OBS reads, and the --help and --xml
// flags.
//
// For example:
//
//	var params struct {
//		P1     string          `name:"p1" help:"String parameter [required]"`
//		P2     *uint           `name:"p2" help:"Integer parameter [optional]"`
//		P3     []string        `name:"p3" help:"Another string parameter [multiple]"`
//		P4     bool            `name:"p4" help:"Boolean parameter"`
//		Outdir obsservice.Path `name:"outdir"`
//	}
//	obsservice.Parse(obsservice.Service{
//		Name:        "example",
//		Summary:     "Example service",
//		Description: "An example service that prints its parameters.",
//	}, &params)
//
// Each parameter has a Kind: Required parameters must be given once, Optional
// ones at most once, Multi ones any number of times, and a Flag takes one of
// true, yes, on, 1, false, no, off or 0. Every service also accepts --outdir,
// the directory OBS expects output in.
//
// Schemas can also be built from Param values with NewSchema, or loaded from
// YAML with LoadSchema. Values are then read with Lookup.
package obsservice
