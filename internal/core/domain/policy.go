package domain

// Feature names appearing in the navigation menu.
const (
	FeatureDashboard = "dashboard"
	FeatureProjects  = "projects"
	FeatureContracts = "contracts"
	FeatureTickets   = "tickets"
	FeatureCalendar  = "calendar"
	FeatureTeam      = "team"
	FeaturePayments  = "payments"
)

// Action names gating what a user may do on service records.
const (
	ActionAdd            = "add"
	ActionEdit           = "edit"
	ActionDelete         = "delete"
	ActionView           = "view"
	ActionAccept         = "accept"
	ActionRequestService = "request_service"
)

// menuTable maps each role to its visible features. Kept as data rather
// than conditionals so the full policy is auditable at a glance and a new
// role is a one-entry change.
var menuTable = map[string]map[string]bool{
	RoleAdmin: {
		FeatureDashboard: true,
		FeatureProjects:  true,
		FeatureContracts: true,
		FeatureTickets:   true,
		FeatureCalendar:  true,
		FeatureTeam:      true,
		FeaturePayments:  true,
	},
	RoleEmployee: {
		FeatureDashboard: true,
		FeatureProjects:  true,
		FeatureContracts: true,
		FeatureTickets:   true,
		FeatureCalendar:  true,
		FeatureTeam:      false,
		FeaturePayments:  true,
	},
	RoleClient: {
		FeatureDashboard: true,
		FeatureProjects:  true,
		FeatureContracts: true,
		FeatureTickets:   true,
		FeatureCalendar:  false,
		FeatureTeam:      false,
		FeaturePayments:  false,
	},
}

// actionTable maps each role to its permitted actions on services.
var actionTable = map[string]map[string]bool{
	RoleAdmin: {
		ActionAdd:            true,
		ActionEdit:           true,
		ActionDelete:         true,
		ActionView:           true,
		ActionAccept:         false,
		ActionRequestService: false,
	},
	RoleEmployee: {
		ActionAdd:            false,
		ActionEdit:           false,
		ActionDelete:         false,
		ActionView:           true,
		ActionAccept:         true,
		ActionRequestService: false,
	},
	RoleClient: {
		ActionAdd:            false,
		ActionEdit:           false,
		ActionDelete:         false,
		ActionView:           false,
		ActionAccept:         false,
		ActionRequestService: true,
	},
}

// MenuFor returns the feature visibility map for a role. Unknown roles
// get the client view, the most restrictive one.
func MenuFor(role string) map[string]bool {
	return copyFlags(menuTable, role)
}

// ActionsFor returns the permitted-action map for a role. Unknown roles
// get the client view.
func ActionsFor(role string) map[string]bool {
	return copyFlags(actionTable, role)
}

func copyFlags(table map[string]map[string]bool, role string) map[string]bool {
	src, ok := table[role]
	if !ok {
		src = table[RoleClient]
	}
	out := make(map[string]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
