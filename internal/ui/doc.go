// Package ui renders command output for the terminal: aligned tables and
// the status markers printed by lint and the change listings.
package ui
