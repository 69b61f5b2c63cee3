package cmdargs

import (
	"strings"

	"github.com/AnthonyMichaelTDM/CLIA/option"
)

// IterateTokens calls `yield` for each token with its role assigned according to known flags
// of `args` until `yield` returns false.
// A token is a flag if it starts with "-". A token following a known list or data flag is its
// payload unless it's a flag itself.
func (args Args) IterateTokens(yield func(token Token) bool) {
	expectValue := false

	for _, arg := range args.Args {
		token := Token{
			Arg: arg,
		}

		switch {
		case isFlag(arg):
			token.Role = RoleFlag
			kind, isKnown := args.knownFlags[arg]
			if isKnown {
				token.Role |= RoleKnown
				token.FlagKind = kind
			}
			expectValue = isKnown && kind != option.KindFlag
		case expectValue:
			token.Role = RoleFlagValue | RoleKnown
			expectValue = false
		default:
			token.Role = RoleUnnamed
		}

		if !yield(token) {
			return
		}
	}
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
