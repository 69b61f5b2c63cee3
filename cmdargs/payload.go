package cmdargs

import (
	"slices"
	"strings"
)

// DataAfterFlag returns the token following the first occurrence of `flag`
func (args Args) DataAfterFlag(flag string) (string, error) {
	return args.tokenAfterFlag(flag)
}

// ListAfterFlag splits the token following the first occurrence of `flag` into items.
// See SplitList
func (args Args) ListAfterFlag(flag string) ([]string, error) {
	value, err := args.tokenAfterFlag(flag)
	if err != nil {
		return nil, err
	}
	return SplitList(value), nil
}

func (args Args) tokenAfterFlag(flag string) (string, error) {
	pos := slices.Index(args.Args, flag)
	if pos < 0 {
		return "", args.flagError(ErrFlagNotFound, flag)
	}
	if pos == len(args.Args)-1 {
		return "", args.flagError(ErrNoArgsAfterFlag, flag)
	}
	next := args.Args[pos+1]
	if isFlag(next) {
		return "", args.flagError(ErrNoValueAfterFlag, flag)
	}
	return next, nil
}

func (args Args) flagError(err error, flag string) *FlagError {
	return &FlagError{
		Err:  err,
		Flag: flag,
		Args: args.clonedArgs(),
	}
}

// SplitList splits `value` by spaces if it contains any, otherwise by commas.
// Empty items are dropped: "a,,b" gives ["a", "b"], "a,b c" gives ["a,b", "c"]
func SplitList(value string) []string {
	sep := ","
	if strings.Contains(value, " ") {
		sep = " "
	}
	parts := strings.Split(value, sep)
	res := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
