package main

import (
	"fmt"
	"os"
	"regexp"
	"slices"
)

// Set via -ldflags at build time.
var buildVersion = "dev"

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var negativeAmount = regexp.MustCompile(`^-[0-9]+$`)

// valueFlags are flags whose value is the next argument. A negative number
// following one of them is that flag's value, not a roll amount.
var valueFlags = map[string]bool{
	"--by":        true,
	"-p":          true,
	"--package":   true,
	"--exclude":   true,
	"--format":    true,
	"--root":      true,
	"--config":    true,
	"--log-level": true,
	"--ignore":    true,
}

// normalizeArgs rewrites a negative roll amount such as "-2" into "--by=-2"
// so the flag parser does not mistake it for a shorthand flag. Arguments
// after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := slices.Clone(args)
	inRoll := false
	for i, arg := range out {
		switch {
		case arg == "--":
			return out
		case arg == "roll":
			inRoll = true
		case inRoll && negativeAmount.MatchString(arg) && (i == 0 || !valueFlags[args[i-1]]):
			out[i] = "--by=" + arg
		}
	}
	return out
}
