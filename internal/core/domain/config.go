package domain

// Config is the complete user-supplied configuration: one build description
// and any number of named tasks.
type Config struct {
	Build BuildConfig
	Tasks map[string]Task
}

// BuildConfig describes one compilation and its follow-up commands.
// Every field is optional. A nil slice means the field was absent, while an
// empty non-nil slice means it was present but empty.
//
// BuildConfig is read-only input: the planner and the cleaner derive their
// effective values from it and never write back.
type BuildConfig struct {
	SourceFiles      []string
	OutputExecutable string
	Compiler         string
	CompilerFlags    string
	AdditionalFlags  string
	Libs             []string
	OutputFolder     string
	Commands         []string
}

// HasCommands reports whether the commands field was supplied.
func (c BuildConfig) HasCommands() bool {
	return c.Commands != nil
}

// ResolvedOutputExecutable returns the configured executable name or
// DefaultOutputExecutable when it is empty.
func (c BuildConfig) ResolvedOutputExecutable() string {
	if c.OutputExecutable == "" {
		return DefaultOutputExecutable
	}
	return c.OutputExecutable
}

// OutputPath joins the output folder and the executable name.
// An empty output folder means the current directory.
func (c BuildConfig) OutputPath() string {
	exe := c.ResolvedOutputExecutable()
	if c.OutputFolder == "" {
		return exe
	}
	return c.OutputFolder + "/" + exe
}

// Task is a named, static list of shell commands.
type Task struct {
	Name string
	// Commands is nil when the task was declared without a commands field.
	Commands []string
}

// HasCommands reports whether the commands field was supplied.
func (t Task) HasCommands() bool {
	return t.Commands != nil
}
