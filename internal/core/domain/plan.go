package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"mvdan.cc/sh/v3/syntax"
)

// Plan is a fully resolved compiler invocation.
// It is derived from a BuildConfig and the environment on every run and never persisted.
// Libs keeps the package names LibraryFlags were resolved from.
type Plan struct {
	Compiler        string
	SourceFiles     []string
	CompilerFlags   []string
	LibraryFlags    []string
	AdditionalFlags []string
	OutputFolder    string
	OutputPath      string
	Libs            []string
	// Commands are the follow-up commands; nil when none were configured.
	Commands []string
}

// Buildable reports whether the plan describes a compiler invocation.
func (p Plan) Buildable() bool {
	return len(p.SourceFiles) > 0 && p.OutputPath != "" && p.Compiler != ""
}

// Args returns the argument vector of the compiler invocation in its fixed order:
// compiler, source files, compiler flags, library flags, additional flags, then -o and the output path.
func (p Plan) Args() []string {
	n := 1 + len(p.SourceFiles) + len(p.CompilerFlags) + len(p.LibraryFlags) + len(p.AdditionalFlags) + 2
	args := make([]string, 0, n)
	args = append(args, p.Compiler)
	args = append(args, p.SourceFiles...)
	args = append(args, p.CompilerFlags...)
	args = append(args, p.LibraryFlags...)
	args = append(args, p.AdditionalFlags...)
	return append(args, "-o", p.OutputPath)
}

// String renders the invocation as a shell-quoted command line.
func (p Plan) String() string {
	args := p.Args()
	quoted := make([]string, len(args))
	for i, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			q = fmt.Sprintf("%q", arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}

// Fingerprint returns a stable identifier of the invocation.
// Two plans with the same argument vector share a fingerprint.
func (p Plan) Fingerprint() string {
	hasher := xxhash.New()
	for _, arg := range p.Args() {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
