// Package kernel contains shared value objects used across the domain model.
// Entity identities are UUIDs wrapped in a kernel.UUID value object so the
// rest of the domain never depends on the uuid library directly.
package kernel
