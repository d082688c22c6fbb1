package entities

// CommandInfo is a reference entry for one git command.
type CommandInfo struct {
	Name        string           `yaml:"name" validate:"required"`
	Description string           `yaml:"description" validate:"required"`
	Synopsis    string           `yaml:"synopsis" validate:"required"`
	Options     []CommandOption  `yaml:"options" validate:"dive"`
	Examples    []CommandExample `yaml:"examples" validate:"dive"`
}

// CommandOption describes a commonly used flag.
type CommandOption struct {
	Flag string `yaml:"flag" validate:"required"`
	Desc string `yaml:"desc"`
}

// CommandExample is a short usage example.
type CommandExample struct {
	Desc string `yaml:"desc"`
	Code string `yaml:"code" validate:"required"`
}
