package domain

// MenuItem is one entry of a navigation menu.
type MenuItem struct {
	Label        string  `json:"label"`
	Icon         string  `json:"icon"`
	Path         string  `json:"path"`
	AllowedRoles RoleSet `json:"-"`
}

// FilterMenu returns the items whose allowed roles intersect roles, in their
// original order. An empty role set yields an empty result.
func FilterMenu(items []MenuItem, roles RoleSet) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.AllowedRoles.Intersects(roles) {
			out = append(out, item)
		}
	}
	return out
}

// Layout is a role family's shell: its route prefix and hand-curated menu.
type Layout struct {
	Name   string
	Prefix string
	Items  []MenuItem
}

// DashboardPath is where a user of this layout lands after login.
func (l Layout) DashboardPath() string {
	return l.Prefix + "/dashboard"
}

var (
	everyone    = NewRoleSet(RoleCustomer, RoleTeller, RoleManager, RoleAdmin)
	staff       = NewRoleSet(RoleTeller, RoleManager, RoleAdmin)
	management  = NewRoleSet(RoleManager, RoleAdmin)
	adminsOnly  = NewRoleSet(RoleAdmin)
	customersUp = everyone
)

// CustomerLayout is the shell of account holders.
var CustomerLayout = Layout{
	Name:   "customer",
	Prefix: "/customer",
	Items: []MenuItem{
		{Label: "Home", Icon: "home", Path: "/customer/dashboard", AllowedRoles: customersUp},
		{Label: "Transfer between my accounts", Icon: "sync_alt", Path: "/customer/internal-transfer", AllowedRoles: customersUp},
		{Label: "External transfer", Icon: "swap_horiz", Path: "/customer/external-transfer", AllowedRoles: customersUp},
		{Label: "My transactions", Icon: "receipt", Path: "/customer/my-transfers", AllowedRoles: customersUp},
		{Label: "Make a payment", Icon: "payment", Path: "/customer/make-payment", AllowedRoles: customersUp},
		{Label: "Notifications", Icon: "notifications", Path: "/customer/notifications", AllowedRoles: customersUp},
	},
}

// TellerLayout is the shell of branch tellers.
var TellerLayout = Layout{
	Name:   "teller",
	Prefix: "/teller",
	Items: []MenuItem{
		{Label: "Home", Icon: "home", Path: "/teller/dashboard", AllowedRoles: everyone},
		{Label: "Transfer between my accounts", Icon: "sync_alt", Path: "/teller/internal-transfer", AllowedRoles: everyone},
		{Label: "External transfer", Icon: "swap_horiz", Path: "/teller/external-transfer", AllowedRoles: everyone},
		{Label: "My transactions", Icon: "receipt", Path: "/teller/my-transfers", AllowedRoles: everyone},
		{Label: "Make a payment", Icon: "payment", Path: "/teller/make-payment", AllowedRoles: everyone},
		{Label: "Create account", Icon: "person_add", Path: "/teller/create-account", AllowedRoles: staff},
		{Label: "All accounts", Icon: "people", Path: "/teller/all-accounts", AllowedRoles: staff},
		{Label: "Check account", Icon: "fact_check", Path: "/teller/check-account", AllowedRoles: staff},
	},
}

// ManagerLayout is the shell of branch managers and administrators.
var ManagerLayout = Layout{
	Name:   "manager",
	Prefix: "/manager",
	Items: []MenuItem{
		{Label: "Home", Icon: "home", Path: "/manager/dashboard", AllowedRoles: everyone},
		{Label: "Transfer between my accounts", Icon: "sync_alt", Path: "/manager/internal-transfer", AllowedRoles: everyone},
		{Label: "My transactions", Icon: "receipt", Path: "/manager/my-transfers", AllowedRoles: everyone},
		{Label: "Make a payment", Icon: "payment", Path: "/manager/make-payment", AllowedRoles: everyone},
		{Label: "Pending transactions", Icon: "playlist_add_check", Path: "/manager/pending-transactions", AllowedRoles: management},
		{Label: "Withdraw", Icon: "call_made", Path: "/manager/withdraw", AllowedRoles: management},
		{Label: "Deposit", Icon: "call_received", Path: "/manager/deposit", AllowedRoles: management},
		{Label: "Create account", Icon: "person_add", Path: "/manager/create-account", AllowedRoles: staff},
		{Label: "All accounts", Icon: "people", Path: "/manager/all-accounts", AllowedRoles: staff},
		{Label: "Check account", Icon: "fact_check", Path: "/manager/check-account", AllowedRoles: staff},
		{Label: "All users", Icon: "group", Path: "/manager/all-users", AllowedRoles: management},
		{Label: "All transactions", Icon: "list_alt", Path: "/manager/all-transactions", AllowedRoles: management},
		{Label: "Account groups", Icon: "workspaces", Path: "/manager/all-groups", AllowedRoles: management},
		{Label: "Interest", Icon: "percent", Path: "/manager/interest", AllowedRoles: management},
		{Label: "Account features", Icon: "extension", Path: "/manager/features", AllowedRoles: management},
		{Label: "User administration", Icon: "admin_panel_settings", Path: "/manager/user-admin", AllowedRoles: adminsOnly},
	},
}

// LayoutFor picks the most privileged layout the roles qualify for.
// The second result is false when no role is known.
func LayoutFor(roles RoleSet) (Layout, bool) {
	switch {
	case roles.HasAny(RoleAdmin, RoleManager):
		return ManagerLayout, true
	case roles.Has(RoleTeller):
		return TellerLayout, true
	case roles.Has(RoleCustomer):
		return CustomerLayout, true
	}
	return Layout{}, false
}

// Menu is the navigation shown to one user.
type Menu struct {
	Layout        string     `json:"layout"`
	DashboardPath string     `json:"dashboardPath"`
	Roles         []Role     `json:"roles"`
	Items         []MenuItem `json:"items"`
}

// BuildMenu filters the layout the roles qualify for. The second result is
// false when no layout applies.
func BuildMenu(roles RoleSet) (Menu, bool) {
	layout, ok := LayoutFor(roles)
	if !ok {
		return Menu{}, false
	}
	return Menu{
		Layout:        layout.Name,
		DashboardPath: layout.DashboardPath(),
		Roles:         roles.Sorted(),
		Items:         FilterMenu(layout.Items, roles),
	}, true
}
