package clia

import (
	"os"
	"path/filepath"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

// CommandLine is a default Parser that is used by the package functions to parse os.Args.
// Its help title is the program file name, following the same pattern as flag.CommandLine.
var CommandLine = NewParser(nil, nil, WithInfo(programName(), "", ""))

func programName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// AddOptions declares options in the default Parser.
// See Parser.AddOptions
func AddOptions(options ...option.Option) error {
	return CommandLine.AddOptions(options...)
}

// AddParameters declares parameters in the default Parser.
// See Parser.AddParameters
func AddParameters(params ...param.Parameter) error {
	return CommandLine.AddParameters(params...)
}

// StructVar registers the given struct with the default Parser.
// `ignoredFields` is a slice of pointers to fields that should be ignored.
// See Parser.StructVar
func StructVar(p any, ignoredFields ...any) error {
	return CommandLine.StructVar(p, ignoredFields...)
}

// Parse scans os.Args using the default Parser
func Parse() (*Result, error) {
	return CommandLine.Parse(os.Args)
}

// PrintHelp prints help of the default Parser to stderr
func PrintHelp() error {
	return CommandLine.PrintHelp()
}
