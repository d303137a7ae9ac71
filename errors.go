package obsservice

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Problems with the command line, as opposed to the program.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}

// Problems with how a schema was declared.
type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}

func logicErrorf(format string, a ...interface{}) error {
	return logicError{fmt.Sprintf(format, a...)}
}

// A required parameter wasn't given, or the outdir was read when it wasn't given.
type MissingRequiredOptionError struct {
	Name string
}

func (me MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("missing required option: %q", flagPrefix+me.Name)
}

// A raw value couldn't be converted to the parameter's type.
type MalformedValueError struct {
	Name  string
	Value string
	Err   error
}

func (me MalformedValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %q: %s", me.Value, flagPrefix+me.Name, me.Err)
}

func (me MalformedValueError) Unwrap() error {
	return me.Err
}

// A single valued parameter was given more than once.
type MultipleOccurrencesError struct {
	Name string
}

func (me MultipleOccurrencesError) Error() string {
	return fmt.Sprintf("option %q given more than once", flagPrefix+me.Name)
}

// IsUserError reports whether err was caused by the command line rather than
// the program's declarations.
func IsUserError(err error) bool {
	var (
		ue  userError
		mro MissingRequiredOptionError
		mv  MalformedValueError
		mo  MultipleOccurrencesError
	)
	return xerrors.As(err, &ue) || xerrors.As(err, &mro) || xerrors.As(err, &mv) || xerrors.As(err, &mo)
}
