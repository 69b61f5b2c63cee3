package clia

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

var (
	ErrFlagRedefined      = errors.New("flag redefined")
	ErrParameterRedefined = errors.New("parameter redefined")
	ErrIsRequired         = errors.New("flag is required")
	ErrNilOption          = errors.New("option is nil")
	ErrInvalidValue       = errors.New("invalid value")
)

func joinErr(errs ...error) error {
	var nonNilErrs []error
	for _, err := range errs {
		if err != nil {
			nonNilErrs = append(nonNilErrs, err)
		}
	}
	switch len(nonNilErrs) {
	case 0:
		return nil
	case 1:
		return nonNilErrs[0]
	default:
		return errors.Join(nonNilErrs...)
	}
}

// checkDeclarations returns an error if some option is nil or has malformed flags,
// if a flag is used by more than one option or a parameter name is used twice
func checkDeclarations(options []option.Option, params []param.Parameter) error {
	var errs []error
	seenFlags := make(map[string]struct{})
	for i, opt := range options {
		if opt == nil {
			errs = append(errs, fmt.Errorf("option %d: %w", i, ErrNilOption))
			continue
		}
		if err := opt.Info().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("option %d: %w", i, err))
			continue
		}
		for _, flag := range opt.Info().Flags() {
			if _, seen := seenFlags[flag]; seen {
				errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrFlagRedefined, flag))
			}
			seenFlags[flag] = struct{}{}
		}
	}
	seenParams := make(map[string]struct{})
	for _, p := range params {
		name := strings.ToUpper(p.Name())
		if _, seen := seenParams[name]; seen {
			errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrParameterRedefined, p.Name()))
		}
		seenParams[name] = struct{}{}
	}
	return joinErr(errs...)
}
