package scripting

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"GopherScript/internal/behaviour"

	"gopkg.in/yaml.v3"
)

var ErrInvalidAssembly = errors.New("invalid assembly")

// Assembly is the manifest of script classes a game uses, together with the
// inspector values each new instance starts with.
type Assembly struct {
	Name    string      `yaml:"name"`
	Version string      `yaml:"version,omitempty"`
	Classes []ClassSpec `yaml:"classes"`
}

type ClassSpec struct {
	Name   string                 `yaml:"name"`
	Fields map[string]interface{} `yaml:"fields,omitempty"`
}

// ReadAssembly loads and validates an assembly manifest from disk
func ReadAssembly(path string) (*Assembly, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assembly: %w", err)
	}
	asm, err := ParseAssembly(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return asm, nil
}

// ParseAssembly decodes a YAML manifest and validates it against the script
// registry.
func ParseAssembly(data []byte) (*Assembly, error) {
	var asm Assembly
	if err := yaml.Unmarshal(data, &asm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssembly, err)
	}
	if err := asm.Validate(); err != nil {
		return nil, err
	}
	return &asm, nil
}

// Validate checks that every class is registered, listed once, and that its
// field overrides can be applied to a fresh instance.
func (a *Assembly) Validate() error {
	seen := make(map[string]bool, len(a.Classes))
	for _, class := range a.Classes {
		if class.Name == "" {
			return fmt.Errorf("%w: class with empty name", ErrInvalidAssembly)
		}
		if seen[class.Name] {
			return fmt.Errorf("%w: class %s listed twice", ErrInvalidAssembly, class.Name)
		}
		seen[class.Name] = true

		probe := behaviour.CreateScript(class.Name)
		if probe == nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidAssembly, class.Name, ErrUnknownClass)
		}
		if err := class.apply(probe); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAssembly, err)
		}
	}
	return nil
}

// Class returns the manifest entry for name
func (a *Assembly) Class(name string) (ClassSpec, bool) {
	for _, class := range a.Classes {
		if class.Name == name {
			return class, true
		}
	}
	return ClassSpec{}, false
}

func (c ClassSpec) apply(script behaviour.Component) error {
	names := make([]string, 0, len(c.Fields))
	for field := range c.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	for _, field := range names {
		if err := behaviour.SetField(script, field, c.Fields[field]); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil
}
