package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Stage is one step of a residence process as shown on the client dashboard.
type Stage struct {
	Key               string   `yaml:"key" json:"key"`
	Title             string   `yaml:"title" json:"title"`
	Description       string   `yaml:"description" json:"description"`
	RequiredDocuments []string `yaml:"required_documents" json:"required_documents"`
}

// StageCatalog maps a process type ("new" / "ongoing") to its ordered stages.
type StageCatalog struct {
	Processes map[string][]Stage `yaml:"processes" json:"processes"`
}

// LoadStageCatalog parses the YAML stage catalog at path.
func LoadStageCatalog(path string) (*StageCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog StageCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}
