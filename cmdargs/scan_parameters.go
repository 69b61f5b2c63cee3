package cmdargs

import "github.com/AnthonyMichaelTDM/CLIA/param"

// ScanParameters binds the last len(declared) tokens to copies of `declared` parameters in order.
// The first token is treated as a program name and can't be a parameter.
//
// Tokens are taken regardless of whether they are also flags or flag payloads.
func (args Args) ScanParameters(declared []param.Parameter) ([]param.Parameter, error) {
	n := len(declared)
	if len(args.Args)-1 < n {
		return nil, &TooFewArgsError{
			Expected: n,
			Got:      max(len(args.Args)-1, 0),
			Args:     args.clonedArgs(),
		}
	}

	window := args.Args[len(args.Args)-n:]
	res := make([]param.Parameter, n)
	for i, p := range declared {
		res[i] = p.WithData(window[i])
	}
	return res, nil
}
