package compile

import (
	"errors"
	"strings"

	"sbc/css"
)

// ErrorKind tags the closed set of compiler errors. Propagation logic
// matches on the tag, never on a type hierarchy.
type ErrorKind int

const (
	// ErrKindMissingSourcePath - no source file is known for the stylesheet
	// being compiled. Fatal, never carries a location.
	ErrKindMissingSourcePath ErrorKind = iota + 1
	// ErrKindInvalidSyntax - malformed state declaration or an illegal
	// combinator/state combination. Carries a location whenever one is
	// available.
	ErrKindInvalidSyntax
)

// Error is a compiler diagnostic. File and Pos are optional; Pos is nil when
// no location was available at raise time.
type Error struct {
	Kind ErrorKind
	Msg  string
	File string
	Pos  *css.Position
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Pos != nil {
		sb.WriteString(e.Pos.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Msg)
	return sb.String()
}

func missingSourcePath() *Error {
	return &Error{Kind: ErrKindMissingSourcePath, Msg: "missing source path"}
}

func invalidSyntax(msg string, pos *css.Position) *Error {
	return &Error{Kind: ErrKindInvalidSyntax, Msg: msg, Pos: pos}
}

// enrichWithFile fills in the source file name on compiler errors that do
// not carry one yet. Foreign errors and errors that already name a file pass
// through unmodified.
func enrichWithFile(err error, file string) error {
	var ce *Error
	if errors.As(err, &ce) && ce.File == "" {
		ce.File = file
	}
	return err
}
