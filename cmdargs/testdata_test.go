package cmdargs

import (
	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

// getTestOptions returns declarations of the line counter example:
// -f/--filter list, -F/--format data, -r/--recursive and -h/--help flags
func getTestOptions() []option.Option {
	return []option.Option{
		option.NewFlagList(option.MustFlagInfo("-f", "--filter", "extensions to count"), "extensions"),
		option.NewFlagData(option.MustFlagInfo("-F", "--format", "output format"), "format"),
		option.NewFlag(option.MustFlagInfo("-r", "--recursive", "search through subdirectories")),
		option.NewFlag(option.MustFlagInfo("-h", "--help", "prints help information")),
	}
}

func getTestParameters() []param.Parameter {
	return []param.Parameter{
		param.New("path", "path to search"),
		param.New("query", "string to search for"),
	}
}
