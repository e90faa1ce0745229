package catalog

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/lingo/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the YAML structure of the bundled catalog document.
type File struct {
	Lessons   []domain.Lesson `yaml:"lessons"`
	Greetings []domain.Phrase `yaml:"greetings"`
}

// Loader reads the lesson catalog from a YAML file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the catalog document at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the catalog file. The core performs no validation beyond
// well-formed YAML; malformed entries are the content author's concern.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return &file, nil
}
