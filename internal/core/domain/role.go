package domain

import "strings"

// Role is a user role tag issued by the core banking API.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleTeller   Role = "TELLER"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

// rolePrefix is how the core banking API spells authorities on the wire.
const rolePrefix = "ROLE_"

// ParseRole normalizes a wire role ("ROLE_MANAGER", "manager") to a Role.
// The second result is false for tags this portal does not know.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(raw)), rolePrefix))
	switch r {
	case RoleCustomer, RoleTeller, RoleManager, RoleAdmin:
		return r, true
	}
	return "", false
}

// WireName returns the role with the prefix the core banking API expects.
func (r Role) WireName() string {
	return rolePrefix + string(r)
}

// RoleSet is an unordered set of roles.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// ParseRoleSet builds a set from wire role tags, dropping unknown tags.
func ParseRoleSet(raw []string) RoleSet {
	set := make(RoleSet, len(raw))
	for _, s := range raw {
		if r, ok := ParseRole(s); ok {
			set[r] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// HasAny reports whether the set contains at least one of roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Intersects reports whether the two sets share a role.
func (s RoleSet) Intersects(other RoleSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for r := range small {
		if large.Has(r) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no role is known.
func (s RoleSet) IsEmpty() bool {
	return len(s) == 0
}

// Sorted returns the roles from most to least privileged.
func (s RoleSet) Sorted() []Role {
	out := make([]Role, 0, len(s))
	for _, r := range []Role{RoleAdmin, RoleManager, RoleTeller, RoleCustomer} {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Capability names an action the portal gates by role.
type Capability string

const (
	CapTransfer          Capability = "transfer"
	CapCreateAccount     Capability = "create_account"
	CapViewAllAccounts   Capability = "view_all_accounts"
	CapCashOperations    Capability = "cash_operations"
	CapApproveTxn        Capability = "approve_transactions"
	CapManageAccounts    Capability = "manage_accounts"
	CapManageInterest    Capability = "manage_interest"
	CapManageGroups      Capability = "manage_groups"
	CapManageDecorators  Capability = "manage_decorators"
	CapViewUsers         Capability = "view_users"
	CapAdministrateUsers Capability = "administrate_users"
)

var capabilityRoles = map[Capability][]Role{
	CapTransfer:          {RoleCustomer, RoleTeller, RoleManager, RoleAdmin},
	CapCreateAccount:     {RoleTeller, RoleManager, RoleAdmin},
	CapViewAllAccounts:   {RoleTeller, RoleManager, RoleAdmin},
	CapCashOperations:    {RoleManager, RoleAdmin},
	CapApproveTxn:        {RoleManager, RoleAdmin},
	CapManageAccounts:    {RoleManager, RoleAdmin},
	CapManageInterest:    {RoleManager, RoleAdmin},
	CapManageGroups:      {RoleManager, RoleAdmin},
	CapManageDecorators:  {RoleManager, RoleAdmin},
	CapViewUsers:         {RoleManager, RoleAdmin},
	CapAdministrateUsers: {RoleAdmin},
}

// Can reports whether a user holding roles may exercise capability.
func Can(roles RoleSet, capability Capability) bool {
	return roles.HasAny(capabilityRoles[capability]...)
}
