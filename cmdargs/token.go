package cmdargs

import "github.com/AnthonyMichaelTDM/CLIA/option"

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleFlag      Role = 1 << iota
	RoleKnown          = 1 << iota // modifies RoleFlag or RoleFlagValue
	RoleFlagValue      = 1 << iota
	RoleUnnamed        = 1 << iota
)

type Token struct {
	Arg string
	// FlagKind is set for RoleFlag | RoleKnown tokens
	FlagKind option.Kind
	// Role is sum of Role constants. Possible values:
	// RoleFlag | RoleKnown       // declared flag, followed by a payload if FlagKind isn't option.KindFlag
	// RoleFlag                   // unknown flag
	// RoleFlagValue | RoleKnown  // payload of the preceding known list or data flag
	// RoleUnnamed                // anything else, including parameters
	Role Role
}
