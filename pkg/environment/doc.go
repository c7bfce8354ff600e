// Package environment converts between textual environment variable
// representations and structured ones. It handles whitespace-separated environ
// strings (as produced by POSIX environ), newline-delimited blocks, and
// os.Environ-style slices.
package environment
