package obsservice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleYAML = `
name: example
summary: Example service
description: An example service that prints its parameters.
parameters:
  - name: p1
    description: String parameter [required]
  - name: p2
    description: Integer parameter [optional]
    kind: optional
    type: uint
  - name: p3
    description: Another string parameter [multiple]
    kind: multi
  - name: p4
    description: Boolean parameter
    kind: flag
`

func TestLoadSchema(t *testing.T) {
	s, err := LoadSchema(strings.NewReader(exampleYAML))
	require.NoError(t, err)
	assert.Equal(t, exampleXML, s.XML())
	assert.Equal(t, exampleSchema().Params(), s.Params())
}

func TestLoadSchemaErrors(t *testing.T) {
	for _, _case := range []struct {
		yaml string
		err  string
	}{
		{"name: x\nversion: 2\n", "field version not found"},
		{"name: x\nparameters:\n  - name: a\n    kind: often\n", `param "a": unknown parameter kind "often"`},
		{"name: x\nparameters:\n  - name: a\n    type: complex128\n", `param "a": unknown type "complex128"`},
		{"name: x\nparameters:\n  - name: a\n  - name: a\n", `param "a" defined more than once`},
		{"name: x\nparameters:\n  - name: f\n    kind: flag\n    type: int\n", `flag param "f" must be bool, not int`},
		{"", "decoding schema"},
	} {
		_, err := LoadSchema(strings.NewReader(_case.yaml))
		require.Error(t, err, _case.yaml)
		assert.Contains(t, err.Error(), _case.err)
	}
}

func TestLoadSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleYAML), 0o644))
	s, err := LoadSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, "example.service", s.ServiceFileName())

	_, err = LoadSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}
