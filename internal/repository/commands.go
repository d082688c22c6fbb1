package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

//go:embed data/commands.yaml
var commandsYAML []byte

var ErrInvalidCommandTable = errors.New("invalid command reference table")

// CommandRepository provides the git command reference entries.
type CommandRepository struct {
	commands []entities.CommandInfo
	index    map[string]int
}

// NewCommandRepository loads the compiled-in command reference.
func NewCommandRepository() (*CommandRepository, error) {
	var doc struct {
		Commands []entities.CommandInfo `yaml:"commands"`
	}
	if err := yaml.Unmarshal(commandsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal command reference: %w", err)
	}

	return NewCommandTable(doc.Commands)
}

// NewCommandTable builds a repository from entries after validating them.
func NewCommandTable(commands []entities.CommandInfo) (*CommandRepository, error) {
	index := make(map[string]int, len(commands))
	for i, c := range commands {
		if err := validate.Struct(c); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %s", ErrInvalidCommandTable, i, c.Name, describeValidation(err))
		}
		if _, dup := index[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate command %q", ErrInvalidCommandTable, c.Name)
		}
		index[c.Name] = i
	}

	return &CommandRepository{
		commands: commands,
		index:    index,
	}, nil
}

// Lookup returns the entry for command, ignoring surrounding whitespace.
func (r *CommandRepository) Lookup(command string) (entities.CommandInfo, bool) {
	i, ok := r.index[strings.TrimSpace(command)]
	if !ok {
		return entities.CommandInfo{}, false
	}
	return r.commands[i], true
}

// All returns every entry in table order.
func (r *CommandRepository) All() []entities.CommandInfo {
	out := make([]entities.CommandInfo, len(r.commands))
	copy(out, r.commands)
	return out
}
