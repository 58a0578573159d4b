// Package sentinel provides a string-backed error type for sentinel errors.
//
// Values of Error can be declared as const, so the sentinels exported by
// mkdirs cannot be reassigned by importers, and they still compare with
// errors.Is through wrapped chains.
package sentinel
