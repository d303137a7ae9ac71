package obsservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var exampleService = Service{
	Name:        "example",
	Summary:     "Example service",
	Description: "An example service that prints its parameters.",
}

func exampleSchema() *Schema {
	return MustSchema(exampleService,
		RequiredParam[string]("p1", "String parameter [required]"),
		OptionalParam[uint]("p2", "Integer parameter [optional]"),
		MultiParam[string]("p3", "Another string parameter [multiple]"),
		FlagParam("p4", "Boolean parameter"),
	)
}

type parseCase struct {
	args     []string
	err      error
	expected map[string]interface{}
}

func noErrorCase(expected map[string]interface{}, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(err error, args ...string) parseCase {
	return parseCase{args: args, err: err}
}

func (me parseCase) Run(t *testing.T, s *Schema) {
	vs, err := s.ParseErr(me.args)
	assert.EqualValues(t, me.err, err, "%q", me.args)
	if me.err != nil {
		return
	}
	for name, expected := range me.expected {
		actual, err := vs.Get(name)
		assert.NoError(t, err)
		assert.EqualValues(t, expected, actual, "%s from %q", name, me.args)
	}
}

func RunCases(t *testing.T, cases []parseCase, s *Schema) {
	for _, _case := range cases {
		_case.Run(t, s)
	}
}
