// Package version implements the semantic-version arithmetic used by
// odometer: signed component bumps with the major/minor/patch reset rule,
// strict SemVer 2.0 validation, and the typed errors both can return.
package version
