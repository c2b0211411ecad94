// Package git answers the few questions odometer asks of Git: where the
// user's global excludes file lives and where a repository keeps its
// info/exclude file. It shells out to the git CLI and does not depend on
// other internal packages.
package git
