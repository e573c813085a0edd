package models

// Action names a permitted operation in the role table.
type Action string

const (
	ActionCreateShip      Action = "create_ship"
	ActionEditShip        Action = "edit_ship"
	ActionDeleteShip      Action = "delete_ship"
	ActionCreateComponent Action = "create_component"
	ActionEditComponent   Action = "edit_component"
	ActionDeleteComponent Action = "delete_component"
	ActionCreateJob       Action = "create_job"
	ActionEditJob         Action = "edit_job"
	ActionDeleteJob       Action = "delete_job"
)

// roleHierarchy lists, per role, the roles whose views it may see.
// Admin ⊇ Inspector ⊇ Engineer.
var roleHierarchy = map[Role][]Role{
	RoleAdmin:     {RoleAdmin, RoleInspector, RoleEngineer},
	RoleInspector: {RoleInspector, RoleEngineer},
	RoleEngineer:  {RoleEngineer},
}

// roleActions is the static role → allowed-action table.
var roleActions = map[Role][]Action{
	RoleAdmin: {
		ActionCreateShip, ActionEditShip, ActionDeleteShip,
		ActionCreateComponent, ActionEditComponent, ActionDeleteComponent,
		ActionCreateJob, ActionEditJob, ActionDeleteJob,
	},
	RoleInspector: {ActionCreateJob, ActionEditJob},
	RoleEngineer:  {ActionEditJob},
}

// HasRole reports whether role's visibility covers required.
func (r Role) HasRole(required Role) bool {
	for _, covered := range roleHierarchy[r] {
		if covered == required {
			return true
		}
	}
	return false
}

// AllowedActions returns the actions permitted for the role. The returned
// slice is a copy; callers may modify it freely.
func (r Role) AllowedActions() []Action {
	actions := roleActions[r]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Can reports whether the role's action table includes action.
func (r Role) Can(action Action) bool {
	for _, a := range roleActions[r] {
		if a == action {
			return true
		}
	}
	return false
}
