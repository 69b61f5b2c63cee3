// Package stdutil derives option declarations from a standard library flag.FlagSet
// and writes scanned options back into it.
package stdutil

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/AnthonyMichaelTDM/CLIA/option"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// IsBoolFlag reports whether the flag can be set without a value (as it's in std flag package)
func IsBoolFlag(f *flag.Flag) bool {
	if boolFlag, ok := f.Value.(boolFlag); ok {
		return boolFlag.IsBoolFlag()
	}
	return false
}

// FlagOf returns the command line form of a std flag name: one-letter names become
// short flags ("-v"), longer ones long flags ("--verbose")
func FlagOf(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// Options returns an option for each flag defined in flagSet in lexicographical order.
// Bool flags become option.Flag, others option.FlagData named after the usage placeholder
// (see flag.UnquoteUsage).
// Flags with names that can't be expressed as short or long flags are reported in the joined error
// and skipped.
func Options(flagSet *flag.FlagSet) ([]option.Option, error) {
	var res []option.Option
	var errs []error
	flagSet.VisitAll(func(f *flag.Flag) {
		valueName, usage := flag.UnquoteUsage(f)
		if f.DefValue != "" && !IsBoolFlag(f) {
			usage = fmt.Sprintf("%s (default %q)", usage, f.DefValue)
		}
		var info option.FlagInfo
		var err error
		if flagStr := FlagOf(f.Name); len(f.Name) == 1 {
			info, err = option.NewFlagInfo(flagStr, "", usage)
		} else {
			info, err = option.NewFlagInfo("", flagStr, usage)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf(`flag "%s": %w`, f.Name, err))
			return
		}
		if IsBoolFlag(f) {
			res = append(res, option.NewFlag(info))
			return
		}
		if valueName == "" {
			valueName = "value"
		}
		res = append(res, option.NewFlagData(info, valueName))
	})
	return res, errors.Join(errs...)
}

// Apply sets values of flagSet flags that correspond to present options:
// "true" for option.Flag, data for option.FlagData and comma-joined items for option.FlagList.
// Options without a matching flag are ignored.
func Apply(flagSet *flag.FlagSet, options []option.Option) error {
	var errs []error
	for _, opt := range options {
		if opt == nil || !opt.Present() {
			continue
		}
		name := nameOf(flagSet, opt.Info())
		if name == "" {
			continue
		}
		var value string
		switch o := opt.(type) {
		case option.Flag:
			value = "true"
		case option.FlagData:
			value = o.Data()
		case option.FlagList:
			value = strings.Join(o.List(), ",")
		default:
			errs = append(errs, fmt.Errorf(`flag "%s": unsupported option type %T`, name, opt))
			continue
		}
		if err := flagSet.Set(name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetExistingFlagNames returns names of the flags that have been set
func GetExistingFlagNames(flagSet *flag.FlagSet) map[string]struct{} {
	flags := make(map[string]struct{})
	flagSet.Visit(func(f *flag.Flag) {
		flags[f.Name] = struct{}{}
	})
	return flags
}

func nameOf(flagSet *flag.FlagSet, info option.FlagInfo) string {
	for _, f := range info.Flags() {
		name := strings.TrimLeft(f, "-")
		if flagSet.Lookup(name) != nil {
			return name
		}
	}
	return ""
}
