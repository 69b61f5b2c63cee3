package clia

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/AnthonyMichaelTDM/CLIA/option"
	"github.com/AnthonyMichaelTDM/CLIA/param"
)

//go:embed templates/help.gotmpl
var HelpTemplateText string

var HelpTemplate = template.Must(template.New("help").Parse(HelpTemplateText))

type helpData struct {
	Info
	Options []option.Option
	Params  []param.Parameter
}

// Help renders help text listing `options` and `params` with their help lines:
//
//	{title}
//	{author}
//
//	{description}
//
//	USAGE: {title} [OPTIONS]... [{param1}] [{param2}]
//
//	OPTIONS:
//	{option help lines}
//
//	PARAMETER ARGUMENTS:
//	{parameter help lines}
func Help(title, author, description string, options []option.Option, params []param.Parameter) string {
	var sb strings.Builder
	// writing to strings.Builder never fails, the template is validated on init
	_ = WriteHelp(&sb, Info{Title: title, Author: author, Description: description}, options, params)
	return sb.String()
}

// WriteHelp writes the text returned by Help to `w`
func WriteHelp(w io.Writer, info Info, options []option.Option, params []param.Parameter) error {
	return HelpTemplate.Execute(w, helpData{
		Info:    info,
		Options: options,
		Params:  params,
	})
}

// Help returns help text for the declared options and parameters using Info set by WithInfo
func (p *Parser) Help() string {
	return Help(p.info.Title, p.info.Author, p.info.Description, p.options, p.params)
}

// PrintHelp writes Help() to the output set by WithOutput
func (p *Parser) PrintHelp() error {
	return WriteHelp(p.output, p.info, p.options, p.params)
}
