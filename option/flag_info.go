package option

import (
	"errors"
	"fmt"
)

// ErrInvalidFlagFormat is returned when a declared short or long flag is malformed
var ErrInvalidFlagFormat = errors.New("flags improperly formatted")

// FormatError names the flags of a malformed declaration
type FormatError struct {
	Short string
	Long  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		`%s: short flag "%s" and/or long flag "%s"`,
		ErrInvalidFlagFormat.Error(), e.Short, e.Long,
	)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFlagFormat
}

// FlagInfo stores the short flag, the long flag and the description of an option.
// Zero value is not a valid declaration: at least one of the flags must be set.
type FlagInfo struct {
	short       string
	long        string
	description string
}

// NewFlagInfo creates a FlagInfo validating the flags:
//   - `short` must be empty or a "-" followed by an ASCII letter, e.g. "-r"
//   - `long` must be empty or "--" followed by ASCII letters and "-" word separators, e.g. "--dry-run"
//   - not both of them can be empty
func NewFlagInfo(short, long, description string) (FlagInfo, error) {
	info := FlagInfo{
		short:       short,
		long:        long,
		description: description,
	}
	if err := info.Validate(); err != nil {
		return FlagInfo{}, err
	}
	return info, nil
}

// MustFlagInfo is like NewFlagInfo but panics if the flags are malformed.
// Intended for declarations hardcoded in a program where a malformed flag is a bug.
func MustFlagInfo(short, long, description string) FlagInfo {
	info, err := NewFlagInfo(short, long, description)
	if err != nil {
		panic(err)
	}
	return info
}

// Validate returns *FormatError if the flags of `i` are malformed
func (i FlagInfo) Validate() error {
	if i.short == "" && i.long == "" ||
		i.short != "" && !IsShortFlag(i.short) ||
		i.long != "" && !IsLongFlag(i.long) {
		return &FormatError{Short: i.short, Long: i.long}
	}
	return nil
}

func (i FlagInfo) Short() string {
	return i.short
}

func (i FlagInfo) Long() string {
	return i.long
}

func (i FlagInfo) Description() string {
	return i.description
}

// Flags returns the non-empty flags, short one first
func (i FlagInfo) Flags() []string {
	res := make([]string, 0, 2)
	if i.short != "" {
		res = append(res, i.short)
	}
	if i.long != "" {
		res = append(res, i.long)
	}
	return res
}

// HasFlag reports whether `flag` is the short or the long flag of `i`
func (i FlagInfo) HasFlag(flag string) bool {
	return flag != "" && (flag == i.short || flag == i.long)
}

func (i FlagInfo) WithDescription(description string) FlagInfo {
	i.description = description
	return i
}

// IsShortFlag reports whether `s` is "-" followed by exactly one ASCII letter
func IsShortFlag(s string) bool {
	return len(s) == 2 && s[0] == '-' && isASCIILetter(s[1])
}

// IsLongFlag reports whether `s` is "--" followed by ASCII letters or "-"
func IsLongFlag(s string) bool {
	if len(s) < 2 || s[:2] != "--" {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isASCIILetter(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
