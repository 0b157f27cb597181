// export_test.go exports private fields for white-box testing.
package planner

import "io"

// SetEnv replaces the environment lookup used for compiler detection and flag expansion.
func (p *Planner) SetEnv(env map[string]string) {
	p.getenv = func(key string) string { return env[key] }
}

// SetOutput replaces the compiler output writers.
func (p *Planner) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}
