// Package cmdargs scans a raw command line (program name first) for declared options
// and positional parameters.
package cmdargs

import (
	"slices"

	"github.com/AnthonyMichaelTDM/CLIA/option"
)

// Args is an immutable list of command line tokens. Methods never modify Args.Args,
// "With" methods return modified copies.
type Args struct {
	// Args are the raw tokens, conventionally os.Args: program name followed by
	// options and their payloads, and then parameters
	Args            []string
	knownFlags      KnownFlags
	ambiguousAsBool bool
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithAmbiguousAsBool sets how unknown flags are treated by StripUnknownFlags:
// if `true`, an unknown flag is never followed by a payload
func (args Args) WithAmbiguousAsBool(ambiguousAsBool bool) Args {
	args.ambiguousAsBool = ambiguousAsBool
	return args
}

// WithOptions marks flags of the given options as known
func (args Args) WithOptions(options ...option.Option) Args {
	return args.WithKnownFlags(KnownFlagsOf(options))
}

func (args Args) WithKnownFlags(knownFlags KnownFlags) Args {
	args.knownFlags = args.knownFlags.Clone()
	for flag, kind := range knownFlags {
		args.knownFlags[flag] = kind
	}
	return args
}

func (args Args) WithoutKnownFlags(knownFlagsToRemove KnownFlags) Args {
	args.knownFlags = args.knownFlags.Clone()
	for flag := range knownFlagsToRemove {
		delete(args.knownFlags, flag)
	}
	return args
}

// Flags returns all tokens that look like flags (start with "-") in order of appearance
func (args Args) Flags() (flags []string) {
	args.IterateTokens(func(token Token) bool {
		if token.Role.Has(RoleFlag) {
			flags = append(flags, token.Arg)
		}
		return true
	})
	return flags
}

func (args Args) clonedArgs() []string {
	return slices.Clone(args.Args)
}
