package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/pkg/errs"
)

// maxAddressLength is the upper bound on a delivery address, in characters.
const maxAddressLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer's purchase from one restaurant.
//
// Invariants:
//   - id, userID and restaurantID are valid UUIDs
//   - address is non-empty, trimmed, and at most 255 characters
//   - at least one line item; price and shippingCosts are non-negative
//   - lifecycle timestamps are acquired monotonically: sentAt implies
//     startedAt, deliveredAt implies sentAt
//   - the restaurant can never change after creation
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	address       string
	price         float64
	shippingCosts float64

	createdAt   time.Time
	startedAt   *time.Time
	sentAt      *time.Time
	deliveredAt *time.Time

	lines []Line

	isConstructed bool
}

// NewOrder creates a pending order with createdAt set to now.
// Lines must already carry their unit-price snapshots (see services.PricingCalculator).
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	lines []Line,
	price float64,
	shippingCosts float64,
) (*Order, error) {
	o := &Order{
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setLines(lines),
		o.setPricing(price, shippingCosts),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// lifecycle timestamps. The timestamp chain is validated so corrupted rows
// cannot produce an order that skips lifecycle states.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	address string,
	lines []Line,
	price float64,
	shippingCosts float64,
	createdAt time.Time,
	startedAt *time.Time,
	sentAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, restaurantID, address, lines, price, shippingCosts)
	if err != nil {
		return nil, err
	}

	if sentAt != nil && startedAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("sentAt",
			errors.New("sentAt is set but startedAt is not"))
	}
	if deliveredAt != nil && sentAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			errors.New("deliveredAt is set but sentAt is not"))
	}

	o.createdAt = createdAt
	o.startedAt = startedAt
	o.sentAt = sentAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ordering customer's identity.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Price returns the order total, shipping included.
func (o *Order) Price() float64 {
	return o.price
}

// ShippingCosts returns the shipping fee applied to the order.
func (o *Order) ShippingCosts() float64 {
	return o.shippingCosts
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns the confirmation timestamp, or nil while pending.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// SentAt returns the shipping timestamp, or nil if not sent.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status derives the lifecycle state from the timestamps.
func (o *Order) Status() Status {
	return StatusOf(o.startedAt, o.sentAt, o.deliveredAt)
}

// IsPending reports whether the order has not been confirmed yet.
func (o *Order) IsPending() bool {
	return o.startedAt == nil
}

// EnsurePending rejects mutation or deletion of an order that has already
// entered the fulfillment pipeline.
func (o *Order) EnsurePending() error {
	if !o.IsPending() {
		return errs.NewConflictError("order has already been started")
	}
	return nil
}

// Confirm moves the order from pending to in process by setting startedAt.
// Legal only while pending.
func (o *Order) Confirm() error {
	if o.startedAt != nil {
		return errs.NewConflictError("order has already been started")
	}

	now := time.Now()
	o.startedAt = &now
	return nil
}

// Send moves the order from in process to sent by setting sentAt.
// Legal only when confirmed and not yet sent.
func (o *Order) Send() error {
	if o.startedAt == nil || o.sentAt != nil {
		return errs.NewConflictError("order cannot be sent")
	}

	now := time.Now()
	o.sentAt = &now
	return nil
}

// Deliver moves the order from sent to delivered by setting deliveredAt.
// Legal only when sent and not yet delivered. The caller is responsible for
// recomputing the restaurant's average service time afterwards.
func (o *Order) Deliver() error {
	if o.startedAt == nil || o.sentAt == nil || o.deliveredAt != nil {
		return errs.NewConflictError("order cannot be delivered")
	}

	now := time.Now()
	o.deliveredAt = &now
	return nil
}

// ChangeDetails replaces the order's address, line items and pricing.
// Legal only while pending; the line set is replaced wholesale with new
// unit-price snapshots.
func (o *Order) ChangeDetails(address string, lines []Line, price, shippingCosts float64) error {
	if err := o.EnsurePending(); err != nil {
		return err
	}

	return errors.Join(
		o.setAddress(address),
		o.setLines(lines),
		o.setPricing(price, shippingCosts),
	)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("longer than %d characters", maxAddressLength))
	}
	o.address = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("products")
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setPricing(price, shippingCosts float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	if shippingCosts < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCosts",
			fmt.Errorf("%f is negative", shippingCosts))
	}
	o.price = price
	o.shippingCosts = shippingCosts
	return nil
}
