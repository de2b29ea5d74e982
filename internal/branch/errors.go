package branch

import "fmt"

// InvalidNameError indicates a branch name that does not match the
// naming grammar, surfaced only in strict mode.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("branch name %q does not match <YYMMDD><r|f|b>-<description>", e.Name)
}

// InvalidDateError indicates a YYMMDD date component out of the
// accepted range.
type InvalidDateError struct {
	Date   int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid branch date %06d: %s", e.Date, e.Reason)
}

// InvalidTypeError indicates a Type value outside the enumeration.
type InvalidTypeError struct {
	Type Type
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid branch type %d", int(e.Type))
}
