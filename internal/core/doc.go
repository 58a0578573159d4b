// Package core implements recursive directory creation for mkdirs.
//
// Resolve turns caller input into an absolute target path and validates it
// for the configured platform family. Build creates every missing segment of
// that target through an FS backend, using either a top-down segment walk or
// a bottom-up create-parent-and-retry loop, and classifies every failure into
// a *PathError. Both the blocking entry point (Ensure) and the concurrent ones
// (EnsureAsync, EnsureAll) run the same Resolve and Build code.
package core
