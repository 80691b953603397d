package registry

// permissions maps a group model to the roles allowed to hold a
// session on it. Captions are moderator-only, notes are open to every
// role.
var permissions = map[Model][]Role{
	ModelNotes:    {RoleModerator, RoleViewer},
	ModelCaptions: {RoleModerator},
}

// Permitted reports whether role may hold a session on a group of
// model m.
func Permitted(m Model, role Role) bool {
	for _, r := range permissions[m] {
		if r == role {
			return true
		}
	}
	return false
}
