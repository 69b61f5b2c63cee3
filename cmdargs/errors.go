package cmdargs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDeclaration = errors.New("invalid option declaration")
	ErrUnknownFlag        = errors.New("unrecognized flag")
	ErrFlagNotFound       = errors.New("flag not found")
	ErrNoArgsAfterFlag    = errors.New("no arguments after flag")
	ErrNoValueAfterFlag   = errors.New("no list/data found after flag")
	ErrTooFewArgs         = errors.New("too few arguments")
)

// FlagError is returned when a payload can't be extracted after Flag.
// Err is one of ErrFlagNotFound, ErrNoArgsAfterFlag, ErrNoValueAfterFlag
type FlagError struct {
	Err  error
	Flag string
	Args []string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf(`%s: "%s" in args %q`, e.Err.Error(), e.Flag, e.Args)
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// UnknownFlagError lists all flags found in Args that are not declared
type UnknownFlagError struct {
	Flags []string
	Args  []string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf(`%s: "%s" in args %q`, ErrUnknownFlag.Error(), strings.Join(e.Flags, `", "`), e.Args)
}

func (e *UnknownFlagError) Unwrap() error {
	return ErrUnknownFlag
}

// TooFewArgsError is returned when Args (not counting the program name) can't
// contain all declared parameters
type TooFewArgsError struct {
	Expected int
	Got      int
	Args     []string
}

func (e *TooFewArgsError) Error() string {
	return fmt.Sprintf(
		"%s: expected at least %d parameters, got %d args in %q",
		ErrTooFewArgs.Error(), e.Expected, e.Got, e.Args,
	)
}

func (e *TooFewArgsError) Unwrap() error {
	return ErrTooFewArgs
}
