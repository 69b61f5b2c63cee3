package main

import (
	"fmt"
	"io"

	clia "github.com/AnthonyMichaelTDM/CLIA"
	"github.com/AnthonyMichaelTDM/CLIA/cmdargs"
)

type logConfig struct {
	Verbose bool   `flag:"-v,--verbose" flagUsage:"Log debug messages"`
	LogFile string `flag:"--log" flagName:"file" flagUsage:"Also write logs to FILE, rotated at 128 MB"`
}

type config struct {
	Filter    []string  `flag:"-f,--filter" flagName:"extensions" flagUsage:"Comma separated list of extensions, will only search files with these extensions"`
	Format    string    `flag:"-F,--format" flagName:"format" flagUsage:"Format the output in a list, valid formats are: DEFAULT, BULLET, MARKDOWN, and NUMERIC"`
	Recursive bool      `flag:"-r,--recursive" flagUsage:"Search through subdirectories"`
	Help      bool      `flag:"-h,--help" flagUsage:"Prints help information"`
	Log       logConfig `flagPrefix:""`
	Path      string    `param:"PATH" paramUsage:"Path to file/folder to search"`
	Query     string    `param:"QUERY" paramUsage:"String to search for, wrap in \"'s if it contains spaces"`
}

// run parses the command line in `args` (without the program name) and searches
func run(name string, args []string, stdout, stderr io.Writer) error {
	cfg := config{Format: string(FormatDefault)}
	tokens := append([]string{name}, args...)

	// logging options are scanned first to log the main parsing
	logParser := clia.NewParser(nil, nil, clia.WithIgnoreUnknown(true), clia.WithUnknownAsBool(true))
	if err := logParser.StructVar(&cfg.Log); err != nil {
		return &exitError{code: ExitUnknownRuntimeError, err: err}
	}
	if _, err := logParser.Parse(tokens); err != nil {
		return &exitError{code: ExitOptionsParseError, err: err}
	}
	logger, closeLog := newLogger(cfg.Log, stderr)
	defer func() {
		_ = closeLog()
	}()

	parser := clia.NewParser(nil, nil,
		clia.WithInfo(name, author, description),
		clia.WithOutput(stdout),
		clia.WithLogger(logger),
	)
	if err := parser.StructVar(&cfg); err != nil {
		return &exitError{code: ExitUnknownRuntimeError, err: err}
	}

	if isHelpRequested(tokens) {
		return parser.PrintHelp()
	}
	if _, err := parser.Parse(tokens); err != nil {
		_, _ = fmt.Fprintln(stderr, parser.Help())
		return &exitError{code: ExitOptionsParseError, err: err}
	}

	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return &exitError{code: ExitOptionsParseError, err: err}
	}
	matches, err := Search(cfg.Path, cfg.Query, SearchOptions{
		Extensions: cfg.Filter,
		Recursive:  cfg.Recursive,
		Logger:     logger,
	})
	if err != nil {
		return &exitError{code: ExitKnownRuntimeError, err: err}
	}
	logger.Debug("search finished", "path", cfg.Path, "matches", len(matches))
	return WriteMatches(stdout, format, matches)
}

// isHelpRequested reports whether -h or --help is among the tokens, so help can be printed
// even if other arguments are invalid
func isHelpRequested(tokens []string) bool {
	for _, flag := range cmdargs.NewArgs(tokens).Flags() {
		if flag == "-h" || flag == "--help" {
			return true
		}
	}
	return false
}
