package planner

import "path/filepath"

const (
	// EnvCompiler names the environment variable that overrides compiler detection.
	EnvCompiler = "CC"
	// CCompiler is used for C sources.
	CCompiler = "gcc"
	// CXXCompiler is used for C++ sources.
	CXXCompiler = "g++"
)

var compilersByExt = map[string]string{
	".c":   CCompiler,
	".cpp": CXXCompiler,
	".cc":  CXXCompiler,
	".cxx": CXXCompiler,
	".c++": CXXCompiler,
	".cp":  CXXCompiler,
}

// ResolveCompiler picks the compiler for sources. A non-empty $CC wins;
// otherwise the first source with a known extension decides. It returns ""
// when nothing matches.
func ResolveCompiler(getenv func(string) string, sources []string) string {
	if cc := getenv(EnvCompiler); cc != "" {
		return cc
	}

	for _, src := range sources {
		if compiler, ok := compilersByExt[filepath.Ext(src)]; ok {
			return compiler
		}
	}
	return ""
}
