package clia

import (
	"flag"
	"slices"
	"strings"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
	"github.com/AnthonyMichaelTDM/CLIA/stdutil"
)

// Result contains copies of the declared options and parameters with scanned payloads
type Result struct {
	options []option.Option
	params  []param.Parameter
	ignored []string
}

// Options returns all declared options in declaration order, present or not
func (r *Result) Options() []option.Option {
	return slices.Clone(r.options)
}

// Parameters returns all declared parameters in declaration order with bound data
func (r *Result) Parameters() []param.Parameter {
	return slices.Clone(r.params)
}

// Option returns the option having `flag` as its short or long flag
func (r *Result) Option(flag string) (option.Option, bool) {
	return option.Find(r.options, flag)
}

// Parameter returns the parameter with the given name. Names are compared case-insensitively
// since they are upper-cased on declaration
func (r *Result) Parameter(name string) (param.Parameter, bool) {
	return param.Find(r.params, strings.ToUpper(name))
}

// IsPresent reports whether the option with `flag` was found in arguments
func (r *Result) IsPresent(flag string) bool {
	opt, ok := r.Option(flag)
	return ok && opt.Present()
}

// List returns items of a present list option, nil otherwise
func (r *Result) List(flag string) []string {
	opt, ok := r.Option(flag)
	if !ok || !opt.Present() {
		return nil
	}
	if list, ok := opt.(option.FlagList); ok {
		return list.List()
	}
	return nil
}

// Data returns the payload of a present data option
func (r *Result) Data(flag string) (string, bool) {
	opt, ok := r.Option(flag)
	if !ok || !opt.Present() {
		return "", false
	}
	data, ok := opt.(option.FlagData)
	if !ok {
		return "", false
	}
	return data.Data(), true
}

// PresentFlags returns the first flag (short, if declared) of each present option
func (r *Result) PresentFlags() []string {
	flags := make([]string, 0, len(r.options))
	for _, opt := range r.options {
		if opt.Present() {
			flags = append(flags, opt.Info().Flags()[0])
		}
	}
	return flags
}

// Ignored returns unknown flags (and their payloads) stripped because of WithIgnoreUnknown(true)
func (r *Result) Ignored() []string {
	return slices.Clone(r.ignored)
}

// ApplyTo sets values of flagSet flags corresponding to the present options.
// See stdutil.Apply
func (r *Result) ApplyTo(flagSet *flag.FlagSet) error {
	return stdutil.Apply(flagSet, r.options)
}
