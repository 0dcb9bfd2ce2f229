package services

import (
	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/core/domain/model/user"
	"deliverus/internal/pkg/errs"
)

// Actor is the authenticated user attempting an order-scoped operation.
type Actor struct {
	id   kernel.UUID
	role user.Role
}

// NewActor creates a validated actor.
func NewActor(id kernel.UUID, role user.Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() user.Role {
	return a.role
}

// AccessGuard decides whether an actor may act on a given order.
// It is a pure function over (role, order, restaurant owner); evaluated once
// per protected operation, never cached.
//
// Rules:
//   - a customer may access an order iff order.userId == actor.id
//   - an owner may access an order iff order.restaurant.userId == actor.id
//   - everything else is Forbidden
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// CanAccess grants access to the order's customer or to the owner of the
// order's restaurant, depending on the actor's role.
func (AccessGuard) CanAccess(actor Actor, ord *order.Order, restaurantOwnerID kernel.UUID) error {
	switch actor.Role() {
	case user.RoleCustomer:
		if actor.ID().IsEqual(ord.UserID()) {
			return nil
		}
	case user.RoleOwner:
		if actor.ID().IsEqual(restaurantOwnerID) {
			return nil
		}
	}
	return errs.NewForbiddenError("this entity does not belong to you")
}

// CanAccessAsCustomer grants access only to the order's customer.
// Used for update and destroy, which owners may not perform.
func (AccessGuard) CanAccessAsCustomer(actor Actor, ord *order.Order) error {
	if actor.Role() == user.RoleCustomer && actor.ID().IsEqual(ord.UserID()) {
		return nil
	}
	return errs.NewForbiddenError("this entity does not belong to you")
}

// CanAccessAsOwner grants access only to the owner of the order's restaurant.
// Used for confirm, send and deliver.
func (AccessGuard) CanAccessAsOwner(actor Actor, restaurantOwnerID kernel.UUID) error {
	if actor.Role() == user.RoleOwner && actor.ID().IsEqual(restaurantOwnerID) {
		return nil
	}
	return errs.NewForbiddenError("not enough privileges, this entity does not belong to you")
}
