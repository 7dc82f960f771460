//go:build spcdebug

package spc

import "fmt"

func check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("spc: "+format, args...))
	}
}
