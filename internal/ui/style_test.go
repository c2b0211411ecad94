package ui

import (
	"bytes"
	"testing"
)

func TestPrinter_plain(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{})

	tests := []struct {
		got  string
		want string
	}{
		{p.OK("All workspace versions are valid"), "✅ All workspace versions are valid"},
		{p.Fail("lib", "invalid version '1.0'"), "❌ lib: invalid version '1.0'"},
		{p.Change("app", "1.0.0", "1.0.1"), "app: 1.0.0 → 1.0.1"},
		{p.Header("Packages"), "Packages"},
		{PlainPrinter().Change("a", "1", "2"), "a: 1 → 2"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
