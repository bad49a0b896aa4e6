package model

import "github.com/google/uuid"

// Owned is implemented by records that belong to exactly one user.
type Owned interface {
	OwnerID() uuid.UUID
	SetOwnerID(uuid.UUID)
}

// Record constrains a pointer to an owned entity. The generic repository and
// service layers are parameterized over it so the list/get/create/update/
// delete skeleton exists exactly once.
type Record[T any] interface {
	*T
	Owned
}
