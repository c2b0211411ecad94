// Package workspace models a directory tree of package manifests as one
// versioned unit. It discovers members, resolves package selections, applies
// version operations to an in-memory copy and writes the result back.
//
// Operations are all-or-nothing: a failing member leaves the Workspace as it
// was, so a later Save writes nothing new.
package workspace
