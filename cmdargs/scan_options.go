package cmdargs

import (
	"errors"
	"fmt"

	"github.com/AnthonyMichaelTDM/CLIA/option"
)

// ScanOptions returns copies of `declared` options with their presence and payloads
// set according to args. `declared` is not modified.
//
// All tokens starting with "-" must be declared flags, otherwise *UnknownFlagError is
// returned. If both short and long flags of a list or data option are present, the payload
// is taken after the short one.
// No partial result is returned in case of error.
func (args Args) ScanOptions(declared []option.Option) ([]option.Option, error) {
	knownFlags, err := validateDeclared(declared)
	if err != nil {
		return nil, err
	}

	presentFlags := make(map[string]struct{})
	var unknownFlags []string
	declaredArgs := Args{Args: args.Args, knownFlags: knownFlags}
	declaredArgs.IterateTokens(func(token Token) bool {
		if !token.Role.Has(RoleFlag) {
			return true
		}
		if !token.Role.Has(RoleKnown) {
			unknownFlags = append(unknownFlags, token.Arg)
		}
		presentFlags[token.Arg] = struct{}{}
		return true
	})
	if len(unknownFlags) > 0 {
		return nil, &UnknownFlagError{
			Flags: unknownFlags,
			Args:  args.clonedArgs(),
		}
	}

	res := make([]option.Option, 0, len(declared))
	for _, opt := range declared {
		scanned, err := args.scanOption(opt, presentFlags)
		if err != nil {
			return nil, err
		}
		res = append(res, scanned)
	}
	return res, nil
}

func (args Args) scanOption(opt option.Option, presentFlags map[string]struct{}) (option.Option, error) {
	switch o := opt.(type) {
	case option.Flag:
		_, ok := firstPresentFlag(o.FlagInfo, presentFlags)
		return o.WithPresent(ok), nil
	case option.FlagList:
		flag, ok := firstPresentFlag(o.FlagInfo, presentFlags)
		if !ok {
			return o.WithPresent(false), nil
		}
		list, err := args.ListAfterFlag(flag)
		if err != nil {
			return nil, err
		}
		return o.WithPresent(true).WithList(list), nil
	case option.FlagData:
		flag, ok := firstPresentFlag(o.FlagInfo, presentFlags)
		if !ok {
			return o.WithPresent(false), nil
		}
		data, err := args.DataAfterFlag(flag)
		if err != nil {
			return nil, err
		}
		return o.WithPresent(true).WithData(data), nil
	case *option.Flag:
		return args.scanOption(*o, presentFlags)
	case *option.FlagList:
		return args.scanOption(*o, presentFlags)
	case *option.FlagData:
		return args.scanOption(*o, presentFlags)
	}
	return nil, fmt.Errorf("%w: unsupported option type %T", ErrInvalidDeclaration, opt)
}

// firstPresentFlag returns the short flag of `info` if present, otherwise the long one
func firstPresentFlag(info option.FlagInfo, presentFlags map[string]struct{}) (string, bool) {
	for _, flag := range info.Flags() {
		if _, ok := presentFlags[flag]; ok {
			return flag, true
		}
	}
	return "", false
}

// validateDeclared checks flags format of all declared options and returns their flags
func validateDeclared(declared []option.Option) (KnownFlags, error) {
	var errs []error
	for i, opt := range declared {
		if opt == nil {
			errs = append(errs, fmt.Errorf("%w: option %d is nil", ErrInvalidDeclaration, i))
			continue
		}
		if err := opt.Info().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: option %d: %w", ErrInvalidDeclaration, i, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return KnownFlagsOf(declared), nil
}
