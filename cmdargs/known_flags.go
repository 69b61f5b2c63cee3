package cmdargs

import "github.com/AnthonyMichaelTDM/CLIA/option"

// KnownFlags is a map where key is a flag ("-r" or "--recursive") and value is
// the kind of the option it belongs to
type KnownFlags map[string]option.Kind

func (flags KnownFlags) Clone() KnownFlags {
	clone := make(KnownFlags, len(flags))
	for flag, kind := range flags {
		clone[flag] = kind
	}
	return clone
}

// KnownFlagsOf returns both short and long flags of the given options
func KnownFlagsOf(options []option.Option) KnownFlags {
	flags := make(KnownFlags, len(options)*2)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		for _, flag := range opt.Info().Flags() {
			flags[flag] = opt.Kind()
		}
	}
	return flags
}

// Has reports whether `flag` is known
func (flags KnownFlags) Has(flag string) bool {
	_, has := flags[flag]
	return has
}
