package version

import (
	"fmt"
	"math"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Component names one of the three numeric parts of a version.
type Component int

const (
	Major Component = iota
	Minor
	Patch
)

func (c Component) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return fmt.Sprintf("component(%d)", int(c))
	}
}

// ParseComponent parses "major", "minor" or "patch".
func ParseComponent(s string) (Component, error) {
	switch strings.ToLower(s) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	default:
		return 0, fmt.Errorf("unknown version component: %q (must be major, minor, or patch)", s)
	}
}

// Bump is a signed increment of one version component. Negative amounts
// decrement.
type Bump struct {
	Component Component
	Amount    int
}

// ParseBump builds a Bump from a component name and amount.
func ParseBump(component string, amount int) (Bump, error) {
	c, err := ParseComponent(component)
	if err != nil {
		return Bump{}, err
	}
	return Bump{Component: c, Amount: amount}, nil
}

func (b Bump) String() string {
	return fmt.Sprintf("%s %d", b.Component, b.Amount)
}

// Parse parses a strict semantic version.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, &InvalidVersionError{Version: s, Err: err}
	}
	return v, nil
}

// Validate returns an *InvalidVersionError if s is not a valid semantic
// version.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// Apply computes the version that results from applying b to current.
//
// Lower-order components are reset to zero when a higher one moves; the
// pre-release and build metadata are carried over unchanged. A zero amount
// returns current as parsed, without resetting anything.
func (b Bump) Apply(current string) (string, error) {
	v, err := Parse(current)
	if err != nil {
		return "", err
	}
	if b.Amount == 0 {
		return v.String(), nil
	}

	major, minor, patch := v.Major(), v.Minor(), v.Patch()
	switch b.Component {
	case Major:
		if major, err = shift(major, b, current); err != nil {
			return "", err
		}
		minor, patch = 0, 0
	case Minor:
		if minor, err = shift(minor, b, current); err != nil {
			return "", err
		}
		patch = 0
	case Patch:
		if patch, err = shift(patch, b, current); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown version component: %v", b.Component)
	}

	return semver.New(major, minor, patch, v.Prerelease(), v.Metadata()).String(), nil
}

func shift(value uint64, b Bump, current string) (uint64, error) {
	if b.Amount > 0 {
		add := uint64(b.Amount)
		if value > math.MaxUint64-add {
			return 0, fmt.Errorf("cannot increment %s version by %d from %s: overflow", b.Component, add, current)
		}
		return value + add, nil
	}
	// -(Amount+1)+1 avoids overflowing on math.MinInt.
	magnitude := uint64(-(b.Amount + 1)) + 1
	if value < magnitude {
		return 0, &DecrementUnderflowError{Component: b.Component, Magnitude: magnitude, Version: current}
	}
	return value - magnitude, nil
}
