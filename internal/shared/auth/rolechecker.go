package auth

import "orgjet/internal/shared/constants"

// IsAdmin checks if the role is the admin role
func IsAdmin(role string) bool {
	return role == constants.RoleAdmin
}

// IsCoordinator checks if the role is the coordinator role
func IsCoordinator(role string) bool {
	return role == constants.RoleCoordinator
}

// CanDeleteRequest reports whether an actor may delete a request. Deletion is
// limited to the request's creator and the ADMIN/COORDINATOR roles.
func CanDeleteRequest(actorID, creatorID uint, role string) bool {
	if actorID == creatorID {
		return true
	}
	return IsAdmin(role) || IsCoordinator(role)
}
