package version

import "fmt"

// InvalidVersionError reports a version string that is not valid SemVer 2.0.
type InvalidVersionError struct {
	Version string
	Err     error
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version '%s': %v", e.Version, e.Err)
}

func (e *InvalidVersionError) Unwrap() error { return e.Err }

// DecrementUnderflowError reports a negative bump larger than the component
// it applies to.
type DecrementUnderflowError struct {
	Component Component
	Magnitude uint64
	Version   string
}

func (e *DecrementUnderflowError) Error() string {
	return fmt.Sprintf("cannot decrement %s version by %d from %s: would result in negative version",
		e.Component, e.Magnitude, e.Version)
}
