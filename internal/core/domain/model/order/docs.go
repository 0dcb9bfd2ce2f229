// Package order contains the Order aggregate and its lifecycle rules.
//
// An order's status is never stored: it is derived from the three lifecycle
// timestamps (startedAt, sentAt, deliveredAt), which are acquired
// monotonically by confirm, send, and deliver. Mutation and deletion are only
// permitted while the order is still pending, i.e. before startedAt is set.
//
// Line items carry a unit-price snapshot captured when the order is created
// or updated; later product price changes never affect an existing order.
package order
