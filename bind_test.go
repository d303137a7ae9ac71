package obsservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exampleCmd struct {
	P1 string   `name:"p1" help:"String parameter [required]"`
	P2 *uint    `name:"p2" help:"Integer parameter [optional]"`
	P3 []string `name:"p3" help:"Another string parameter [multiple]"`
	P4 bool     `name:"p4" help:"Boolean parameter"`
}

func TestStructSchemaMatchesParams(t *testing.T) {
	s, err := StructSchema(exampleService, &exampleCmd{})
	require.NoError(t, err)
	assert.Equal(t, exampleXML, s.XML())
	assert.Equal(t, exampleSchema().Params(), s.Params())
}

func TestBind(t *testing.T) {
	var cmd exampleCmd
	s, err := StructSchema(exampleService, &cmd)
	require.NoError(t, err)
	vs, err := s.ParseErr([]string{"--p1", "x", "--p2", "3", "--p4", "1"})
	require.NoError(t, err)
	require.NoError(t, vs.Bind(&cmd))
	assert.Equal(t, "x", cmd.P1)
	assert.EqualValues(t, 3, *cmd.P2)
	assert.Equal(t, []string{}, cmd.P3)
	assert.True(t, cmd.P4)

	var other struct {
		P9 string `name:"p9"`
	}
	assert.Error(t, vs.Bind(&other))
	assert.EqualValues(t, logicError{"expected pointer to struct, got obsservice.exampleCmd"}, vs.Bind(cmd))
}

func TestBindOutdir(t *testing.T) {
	var cmd struct {
		Name   string
		Outdir Path
	}
	err := ParseArgs(Service{Name: "svc"}, &cmd, []string{"--name", "n", "--outdir", "/srv/out"})
	require.NoError(t, err)
	assert.Equal(t, Path("/srv/out"), cmd.Outdir)

	err = ParseArgs(Service{Name: "svc"}, &cmd, []string{"--name", "n"})
	assert.EqualValues(t, MissingRequiredOptionError{"outdir"}, err)
}

type (
	flagBool bool
	count    int
)

func TestBindConversions(t *testing.T) {
	s := MustSchema(Service{Name: "x"}, RequiredParam[int]("n", ""), FlagParam("f", ""))
	vs, err := s.ParseErr([]string{"--n", "65", "--f", "on"})
	require.NoError(t, err)

	var named struct {
		N count    `name:"n"`
		F flagBool `name:"f"`
	}
	require.NoError(t, vs.Bind(&named))
	assert.EqualValues(t, 65, named.N)
	assert.EqualValues(t, true, named.F)

	var asString struct {
		N string `name:"n"`
		F bool   `name:"f"`
	}
	assert.EqualValues(t, logicError{"can't bind int to field N of type string"}, vs.Bind(&asString))
	assert.Empty(t, asString.N)

	var asFloat struct {
		N float64 `name:"n"`
	}
	assert.EqualValues(t, logicError{"can't bind int to field N of type float64"}, vs.Bind(&asFloat))

	var asInt64 struct {
		N int64 `name:"n"`
	}
	assert.EqualValues(t, logicError{"can't bind int to field N of type int64"}, vs.Bind(&asInt64))
}

type Common struct {
	Verbose bool `help:"chatty"`
}

func TestStructFields(t *testing.T) {
	var cmd struct {
		Common
		ListenAddr string
		Timeout    *time.Duration `help:"how long to wait"`
		Sizes      []Bytes
		Skipped    string `name:"-"`
		private    string
		Required   bool `kind:"required"`
	}
	s, err := StructSchema(Service{Name: "fields"}, &cmd)
	require.NoError(t, err)
	var names []string
	for _, p := range s.Params() {
		names = append(names, p.Name+":"+p.Kind.String())
	}
	assert.Equal(t, []string{
		"verbose:flag",
		"listen-addr:required",
		"timeout:optional",
		"sizes:multi",
		"required:required",
	}, names)
	p, _ := s.Param("timeout")
	assert.Equal(t, "how long to wait", p.Description)

	err = ParseArgs(Service{Name: "fields"}, &cmd, []string{
		"--verbose", "yes",
		"--listen-addr", ":80",
		"--timeout", "1m30s",
		"--sizes", "1k", "--sizes", "2MiB",
		"--required", "no",
	})
	require.NoError(t, err)
	assert.True(t, cmd.Verbose)
	assert.Equal(t, ":80", cmd.ListenAddr)
	assert.Equal(t, 90*time.Second, *cmd.Timeout)
	assert.Equal(t, []Bytes{1000, 2 << 20}, cmd.Sizes)
	assert.False(t, cmd.Required)
	assert.Empty(t, cmd.private)

	err = ParseArgs(Service{Name: "fields"}, &cmd, []string{"--listen-addr", ":80"})
	assert.EqualValues(t, MissingRequiredOptionError{"required"}, err)
}

func TestStructBadFields(t *testing.T) {
	var badType struct {
		C chan int
	}
	_, err := StructSchema(Service{Name: "x"}, &badType)
	assert.EqualError(t, err, "field C: field has bad type: chan int")

	var badKind struct {
		Names []string `kind:"optional"`
	}
	_, err = StructSchema(Service{Name: "x"}, &badKind)
	assert.EqualError(t, err, `field Names: optional param "names" needs a pointer, not []string`)

	var unknownKind struct {
		Names []string `kind:"lots"`
	}
	_, err = StructSchema(Service{Name: "x"}, &unknownKind)
	assert.EqualError(t, err, `field Names: unknown parameter kind "lots"`)

	var duplicate struct {
		A string `name:"a"`
		B string `name:"a"`
	}
	_, err = StructSchema(Service{Name: "x"}, &duplicate)
	assert.EqualValues(t, logicError{`param "a" defined more than once`}, err)
}

func TestDefaultFlagName(t *testing.T) {
	assert.EqualValues(t, "no-upload", fieldFlagName("NoUpload"))
	assert.EqualValues(t, "tcp-addr", fieldFlagName("TCPAddr"))
	assert.EqualValues(t, "outdir", fieldFlagName("Outdir"))
	assert.EqualValues(t, "addr", fieldFlagName("Addr"))
	assert.EqualValues(t, "a", fieldFlagName("A"))
}
