package clia

import (
	"io"
	"log/slog"
)

// ParserOption configures a Parser created with NewParser
type ParserOption func(p *Parser)

// WithLogger sets the logger receiving debug records about scanning and warnings about
// failures. Logs are discarded by default
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithOutput sets the writer PrintHelp writes to. Default is os.Stderr
func WithOutput(output io.Writer) ParserOption {
	return func(p *Parser) {
		if output != nil {
			p.output = output
		}
	}
}

// WithInfo sets the program title, author and description shown in help
func WithInfo(title, author, description string) ParserOption {
	return func(p *Parser) {
		p.info = Info{
			Title:       title,
			Author:      author,
			Description: description,
		}
	}
}

// WithIgnoreUnknown sets the behavior of Parse() when undeclared flags are passed.
// If `true`, they are stripped before scanning (see Result.Ignored).
// If `false`, Parse() returns an error wrapping cmdargs.ErrUnknownFlag.
// Default value is `false`.
func WithIgnoreUnknown(ignore bool) ParserOption {
	return func(p *Parser) {
		p.ignoreUnknown = ignore
	}
}

// WithUnknownAsBool sets how ignored unknown flags are stripped.
// If `true`, an unknown flag is stripped alone.
// If `false`, the following token is stripped with it unless it's a flag.
// Default value is `false`. Takes effect only with WithIgnoreUnknown(true)
func WithUnknownAsBool(asBool bool) ParserOption {
	return func(p *Parser) {
		p.unknownAsBool = asBool
	}
}
