package clia

import (
	"flag"

	"github.com/AnthonyMichaelTDM/CLIA/param"
	"github.com/AnthonyMichaelTDM/CLIA/stdutil"
)

// FromFlagSet creates a Parser declaring an option for each flag defined in flagSet:
// bool flags are flags, others are data options. One-letter flag names become short flags ("-v"),
// longer names become long flags ("--verbose").
// Help title and output are taken from flagSet. Use Result.ApplyTo to set flagSet values after Parse.
func FromFlagSet(flagSet *flag.FlagSet, params []param.Parameter, opts ...ParserOption) (*Parser, error) {
	options, err := stdutil.Options(flagSet)
	if err != nil {
		return nil, err
	}
	opts = append([]ParserOption{
		WithInfo(flagSet.Name(), "", ""),
		WithOutput(flagSet.Output()),
	}, opts...)
	return NewParser(options, params, opts...), nil
}
