// Package walk lists the files below a directory the way Git sees them:
// .gitignore files, the repository's info/exclude and the user's global
// excludes file are honored, and extra glob patterns can hide more.
//
// It depends on internal/git only to locate the exclude files.
package walk
