package clia

import (
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/AnthonyMichaelTDM/CLIA/cmdargs"
	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

// Info describes the program in help output
type Info struct {
	Title       string
	Author      string
	Description string
}

// Parser holds option and parameter declarations and scans command lines for them.
// Declarations can be passed to NewParser, added with AddOptions / AddParameters or derived
// from struct fields with StructVar.
//
// Parse can be called concurrently if no structs are registered: it never modifies the declarations.
type Parser struct {
	options []option.Option
	params  []param.Parameter
	// registeredFields are fields of the structs registered with StructVar, assigned by Parse
	registeredFields []fieldInfo
	logger           *slog.Logger
	output           io.Writer
	info             Info
	ignoreUnknown    bool
	unknownAsBool    bool
}

// NewParser creates a Parser for the given declarations. Declarations are validated by Parse
func NewParser(options []option.Option, params []param.Parameter, opts ...ParserOption) *Parser {
	p := &Parser{
		options: slices.Clone(options),
		params:  slices.Clone(params),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		output:  os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Options returns the declared options
func (p *Parser) Options() []option.Option {
	return slices.Clone(p.options)
}

// Parameters returns the declared parameters
func (p *Parser) Parameters() []param.Parameter {
	return slices.Clone(p.params)
}

func (p *Parser) Info() Info {
	return p.info
}

// AddOptions declares more options. Nothing is added if any of them is invalid or
// redefines a flag of another option
func (p *Parser) AddOptions(options ...option.Option) error {
	newOptions := append(slices.Clone(p.options), options...)
	if err := checkDeclarations(newOptions, p.params); err != nil {
		return err
	}
	p.options = newOptions
	return nil
}

// AddParameters declares more parameters, they are bound after the already declared ones
func (p *Parser) AddParameters(params ...param.Parameter) error {
	newParams := append(slices.Clone(p.params), params...)
	if err := checkDeclarations(p.options, newParams); err != nil {
		return err
	}
	p.params = newParams
	return nil
}

// Parse scans `arguments` (the program name followed by options and parameters, as in os.Args)
// for the declared options and parameters and assigns fields of the registered structs.
//
// Returned error wraps one of cmdargs errors for user input problems or ErrIsRequired if a
// required struct flag is absent. Options are scanned first: if both options and parameters
// are invalid, the options error is returned.
func (p *Parser) Parse(arguments []string) (*Result, error) {
	if err := checkDeclarations(p.options, p.params); err != nil {
		p.logger.Error("invalid declarations", "error", err)
		return nil, err
	}
	p.logger.Debug("scanning arguments", "args", arguments)

	args := cmdargs.NewArgs(arguments)
	var ignored []string
	if p.ignoreUnknown {
		var stripped cmdargs.Args
		args, stripped = args.
			WithOptions(p.options...).
			WithAmbiguousAsBool(p.unknownAsBool).
			StripUnknownFlags()
		ignored = stripped.Args
		if len(ignored) > 0 {
			p.logger.Debug("ignoring unknown flags", "ignored", ignored)
		}
	}

	options, err := args.ScanOptions(p.options)
	if err != nil {
		p.logger.Warn("failed to scan options", "error", err)
		return nil, err
	}
	params, err := args.ScanParameters(p.params)
	if err != nil {
		p.logger.Warn("failed to scan parameters", "error", err)
		return nil, err
	}

	res := &Result{
		options: options,
		params:  params,
		ignored: ignored,
	}
	if err := p.assignRegisteredFields(res); err != nil {
		p.logger.Warn("failed to assign fields", "error", err)
		return nil, err
	}
	p.logger.Debug("arguments scanned",
		"present", res.PresentFlags(),
		"parameters", param.Names(params),
	)
	return res, nil
}
