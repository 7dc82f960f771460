//go:build !spcdebug

package spc

// check verifies caller contracts. It compiles to nothing unless built with
// the spcdebug tag.
func check(bool, string, ...any) {}
