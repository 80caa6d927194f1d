package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func parseYAML(data []byte, cols Columns) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return fromDocument(doc, cols)
}
