// Package param contains the declaration of positional parameters: required arguments that follow
// all options, bound by position from the end of the command line.
package param

import "strings"

// Parameter is a named positional argument. Order of declared parameters defines
// the order in which they are expected on the command line.
type Parameter struct {
	name        string
	description string
	data        string
}

// New creates a Parameter with upper-cased `name` and empty data
func New(name, description string) Parameter {
	return Parameter{
		name:        strings.ToUpper(name),
		description: description,
	}
}

func (p Parameter) Name() string {
	return p.name
}

func (p Parameter) Description() string {
	return p.description
}

// Data returns the scanned value
func (p Parameter) Data() string {
	return p.data
}

// HelpLine returns the parameter name and its description on the next line
func (p Parameter) HelpLine() string {
	return "    " + p.name + ":\n        " + p.description
}

func (p Parameter) WithName(name string) Parameter {
	p.name = name
	return p
}

func (p Parameter) WithDescription(description string) Parameter {
	p.description = description
	return p
}

func (p Parameter) WithData(data string) Parameter {
	p.data = data
	return p
}

func (p *Parameter) SetName(name string) {
	p.name = name
}

func (p *Parameter) SetDescription(description string) {
	p.description = description
}

func (p *Parameter) SetData(data string) {
	p.data = data
}

// Find returns the first parameter with the given name
func Find(params []Parameter, name string) (Parameter, bool) {
	for _, p := range params {
		if p.name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Names returns names of `params` in order
func Names(params []Parameter) []string {
	res := make([]string, len(params))
	for i, p := range params {
		res[i] = p.name
	}
	return res
}
