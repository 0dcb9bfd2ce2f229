// Package guard provides a constructor guard for value types that must be
// created through their factory functions. Commands and queries embed a
// ConstructorGuard so zero-value instances are rejected before handling.
package guard

// ConstructorGuard marks a value as having been built by its constructor.
// The zero value is invalid, which is exactly what makes the pattern work:
// a struct literal bypassing the constructor carries an unset guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns notConstructedErr if the guard was not set by a constructor.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if !g.constructed {
		return notConstructedErr
	}
	return nil
}
