package option

import (
	"slices"
	"strings"
)

type Kind int

const (
	KindFlag Kind = iota
	KindFlagList
	KindFlagData
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindFlagList:
		return "flag list"
	case KindFlagData:
		return "flag data"
	default:
		return "unknown"
	}
}

// Option is one of Flag, FlagList or FlagData.
// All implementations are values: "With" methods return modified copies
// and never change the receiver.
type Option interface {
	Kind() Kind
	Info() FlagInfo
	Present() bool
	// HelpLine returns a line describing the option for help output
	HelpLine() string

	isOption()
}

var (
	_ Option = Flag{}
	_ Option = FlagList{}
	_ Option = FlagData{}
)

// Flag is an option that is either present or not
type Flag struct {
	FlagInfo
	present bool
}

func NewFlag(info FlagInfo) Flag {
	return Flag{FlagInfo: info}
}

func (f Flag) Kind() Kind {
	return KindFlag
}

func (f Flag) Info() FlagInfo {
	return f.FlagInfo
}

func (f Flag) Present() bool {
	return f.present
}

func (f Flag) HelpLine() string {
	return helpLine(f.FlagInfo, "")
}

func (f Flag) WithPresent(present bool) Flag {
	f.present = present
	return f
}

func (Flag) isOption() {}

// FlagList is an option followed by a comma or space separated list, e.g. `-f rs,go,md`
type FlagList struct {
	FlagInfo
	present bool
	name    string
	list    []string
}

// NewFlagList creates a FlagList. `listName` is upper-cased and used as a placeholder in help
func NewFlagList(info FlagInfo, listName string) FlagList {
	return FlagList{
		FlagInfo: info,
		name:     upperASCII(listName),
	}
}

func (f FlagList) Kind() Kind {
	return KindFlagList
}

func (f FlagList) Info() FlagInfo {
	return f.FlagInfo
}

func (f FlagList) Present() bool {
	return f.present
}

func (f FlagList) HelpLine() string {
	return helpLine(f.FlagInfo, " <"+f.name+">...")
}

// Name returns the upper-cased list name
func (f FlagList) Name() string {
	return f.name
}

// List returns a copy of the scanned list items
func (f FlagList) List() []string {
	return slices.Clone(f.list)
}

func (f FlagList) WithPresent(present bool) FlagList {
	f.present = present
	return f
}

func (f FlagList) WithList(list []string) FlagList {
	f.list = slices.Clone(list)
	return f
}

func (FlagList) isOption() {}

// FlagData is an option followed by a single value, e.g. `--format NUMERIC`
type FlagData struct {
	FlagInfo
	present bool
	name    string
	data    string
}

// NewFlagData creates a FlagData. `dataName` is upper-cased and used as a placeholder in help
func NewFlagData(info FlagInfo, dataName string) FlagData {
	return FlagData{
		FlagInfo: info,
		name:     upperASCII(dataName),
	}
}

func (f FlagData) Kind() Kind {
	return KindFlagData
}

func (f FlagData) Info() FlagInfo {
	return f.FlagInfo
}

func (f FlagData) Present() bool {
	return f.present
}

func (f FlagData) HelpLine() string {
	return helpLine(f.FlagInfo, " <"+f.name+">")
}

// Name returns the upper-cased data name
func (f FlagData) Name() string {
	return f.name
}

func (f FlagData) Data() string {
	return f.data
}

func (f FlagData) WithPresent(present bool) FlagData {
	f.present = present
	return f
}

func (f FlagData) WithData(data string) FlagData {
	f.data = data
	return f
}

func (FlagData) isOption() {}

// Find returns the first option having `flag` as its short or long flag
func Find(options []Option, flag string) (Option, bool) {
	for _, opt := range options {
		if opt.Info().HasFlag(flag) {
			return opt, true
		}
	}
	return nil, false
}

// upperASCII upper-cases ASCII letters only, leaving other runes untouched
func upperASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
