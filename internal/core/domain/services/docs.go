// Package services contains stateless domain services for the order
// workflow: the pricing calculator (order totals and the free-shipping rule)
// and the access guard (ownership-based access decisions).
package services
