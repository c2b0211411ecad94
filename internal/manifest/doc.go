// Package manifest reads and rewrites the version field of package
// manifests. Each supported ecosystem is an Adapter; edits splice the new
// value into the original text so that comments, key order and whitespace
// survive untouched.
package manifest
