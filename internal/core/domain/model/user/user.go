// Package user contains the User read model. Users are managed by the
// account side of the system; the order workflow reads identity and role to
// drive access decisions.
package user

import (
	"fmt"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// Role distinguishes the two kinds of actors the order workflow knows about.
// An explicit tagged variant: access decisions branch on it in exactly one
// place (services.AccessGuard).
type Role string

const (
	// RoleCustomer places orders and may mutate them while pending.
	RoleCustomer Role = "customer"

	// RoleOwner runs a restaurant and progresses its orders through the
	// fulfillment lifecycle.
	RoleOwner Role = "owner"
)

// ParseRole converts a raw string to a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role is one of the known variants.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleOwner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("userType",
			fmt.Errorf("%q is not a valid user type", string(r)))
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User is a read-only view of an account.
type User struct {
	id        kernel.UUID
	firstName string
	email     string
	avatar    string
	role      Role
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, firstName, email, avatar string, role Role) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:        id,
		firstName: firstName,
		email:     email,
		avatar:    avatar,
		role:      role,
	}, nil
}

// ID returns the user's identity.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Avatar returns the user's avatar image reference.
func (u *User) Avatar() string {
	return u.avatar
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}
