package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// opcodeComment matches the mnemonic and opcode comments above each handler.
var opcodeComment = regexp.MustCompile(`// (.+)\n// #0x([0-9A-F]{2}):`)

func main() {
	var (
		opcodes string
		out     string
		cols    int
	)
	flag.StringVar(&opcodes, "opcodes", filepath.Join("..", "cpu", "opcodes.go"), "CPU opcode table to read mnemonics from")
	flag.StringVar(&out, "out", "templates.go", "Go file to write")
	flag.IntVar(&cols, "cols", 4, "Templates per line")
	flag.Parse()

	src, err := os.ReadFile(opcodes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", opcodes, err)
		os.Exit(1)
	}

	var templates [256]string
	seen := 0
	for _, m := range opcodeComment.FindAllSubmatch(src, -1) {
		op, err := strconv.ParseUint(string(m[2]), 16, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: bad opcode %q: %v\n", m[2], err)
			os.Exit(1)
		}
		if templates[op] == "" {
			seen++
		}
		templates[op] = string(m[1])
	}
	if seen != len(templates) {
		fmt.Fprintf(os.Stderr, "error: found %d of %d opcodes in %s\n", seen, len(templates), opcodes)
		os.Exit(1)
	}
	if cols <= 0 {
		cols = 4
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated from the CPU opcode table. DO NOT EDIT.\n\n")
	buf.WriteString("package disasm\n\n")
	buf.WriteString("// InstructionTemplates holds the mnemonic of every opcode with operand\n")
	buf.WriteString("// placeholders: d direct page, dd/ds destination and source direct page,\n")
	buf.WriteString("// !a absolute, #i immediate, r relative branch, m.b absolute bit, u upper page.\n")
	buf.WriteString("var InstructionTemplates = [256]string{\n")
	for i := 0; i < len(templates); i += cols {
		buf.WriteString("\t")
		for c := 0; c < cols && i+c < len(templates); c++ {
			fmt.Fprintf(&buf, "%q, ", templates[i+c])
		}
		fmt.Fprintf(&buf, "// 0x%02X\n", i)
	}
	buf.WriteString("}\n")

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: formatting output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, formatted, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", out, err)
		os.Exit(1)
	}
}
