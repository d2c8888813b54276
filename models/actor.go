package models

// Actor is the authenticated identity attempting an operation. It is
// resolved once by the auth middleware and passed explicitly into every
// service call; there is no process-wide session state.
type Actor struct {
	ID    uint
	Email string
	Role  UserRole
}

// CanMutate reports whether the actor may mutate a resource owned by
// ownerID: owners and admins may, everyone else may not.
func (a Actor) CanMutate(ownerID uint) bool {
	return a.ID == ownerID || a.Role == RoleAdmin
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
