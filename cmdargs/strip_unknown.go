package cmdargs

// StripUnknownFlags splits args into tokens that can be scanned with known flags
// and unknown flags with their payloads.
// An unknown flag is considered to have a payload (the next token, if it's not a flag)
// unless WithAmbiguousAsBool(true) was set.
// Both results keep known flags settings of `args`.
func (args Args) StripUnknownFlags() (res, stripped Args) {
	res.knownFlags = args.knownFlags
	res.ambiguousAsBool = args.ambiguousAsBool
	stripped.knownFlags = args.knownFlags
	stripped.ambiguousAsBool = args.ambiguousAsBool

	afterUnknownFlag := false
	args.IterateTokens(func(token Token) bool {
		switch {
		case token.Role.Has(RoleFlag) && !token.Role.Has(RoleKnown):
			stripped.Args = append(stripped.Args, token.Arg)
			afterUnknownFlag = !args.ambiguousAsBool
			return true
		case afterUnknownFlag && token.Role == RoleUnnamed:
			stripped.Args = append(stripped.Args, token.Arg)
		default:
			res.Args = append(res.Args, token.Arg)
		}
		afterUnknownFlag = false
		return true
	})

	return res, stripped
}
