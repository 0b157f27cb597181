package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Build *BuildDTO           `yaml:"build"`
	Tasks map[string]*TaskDTO `yaml:"tasks"`
}

// BuildDTO represents the build section of the configuration.
type BuildDTO struct {
	SourceFiles      []string `yaml:"sourceFiles"`
	OutputExecutable string   `yaml:"outputExecutable"`
	Compiler         string   `yaml:"compiler"`
	CompilerFlags    string   `yaml:"compilerFlags"`
	AdditionalFlags  string   `yaml:"additionalFlags"`
	Libs             []string `yaml:"libs"`
	OutputFolder     string   `yaml:"outputFolder"`
	Commands         []string `yaml:"commands"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	Name     string   `yaml:"name"`
	Commands []string `yaml:"commands"`
}
