// Package config loads the optional .odometer.yaml file at the workspace
// root. Command-line flags take precedence over its values.
package config
