// Package policy centralizes the ownership rule applied to every workout and
// meal operation: admins may do anything, everyone else only touches records
// they own.
package policy

import (
	"fmt"

	"github.com/google/uuid"

	"fittrack/internal/model"
)

// Operation names what the caller is doing to a record. The value appears
// verbatim in deny reasons.
type Operation string

const (
	OpAccess Operation = "access"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Decision is an explicit allow/deny with a user-facing reason when denied.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether caller may perform op on a record owned by
// ownerID. resource is the lowercase singular type name used in the reason.
func Authorize(caller *model.User, ownerID uuid.UUID, op Operation, resource string) Decision {
	if caller.IsAdmin() || caller.ID == ownerID {
		return Decision{Allowed: true}
	}
	return Decision{
		Reason: fmt.Sprintf("Forbidden: You can only %s your own %ss", op, resource),
	}
}

// ListScope returns the owner filter for list queries: nil means the caller
// sees every record, otherwise only records owned by the returned id.
func ListScope(caller *model.User) *uuid.UUID {
	if caller.IsAdmin() {
		return nil
	}
	id := caller.ID
	return &id
}

// ResolveOwner picks the owner for a created or updated record. A requested
// owner is honored only for admins; for everyone else it is silently
// discarded and fallback wins.
func ResolveOwner(caller *model.User, requested *uuid.UUID, fallback uuid.UUID) uuid.UUID {
	if caller.IsAdmin() && requested != nil {
		return *requested
	}
	return fallback
}
