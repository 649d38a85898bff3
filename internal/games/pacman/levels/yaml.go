package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the YAML structure for a maze file.
// Rows are layout strings using the legend described in ParseRows.
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML maze file into a Level.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("levels: maze file missing id")
	}

	rows, err := ParseRows(yl.Rows)
	if err != nil {
		return Level{}, err
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:   yl.ID,
		Name: name,
		Rows: rows,
	}, nil
}
