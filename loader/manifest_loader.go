package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sakibahmad/schemabridge/mdl"
)

// LoadManifestFromYAML reads a manifest definition from a YAML file.
func LoadManifestFromYAML(filename string) (*mdl.Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}

	var m mdl.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	return &m, nil
}
