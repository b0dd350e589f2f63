package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/relato/pkg/relato/internalerr"
)

// Seed represents a seed corpus: sentences to translate into facts and
// questions to ask against them.
type Seed struct {
	Sentences []string `yaml:"sentences"`
	Questions []string `yaml:"questions"`
}

// LoadSeed loads a seed corpus from a YAML file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}

	if len(seed.Sentences) == 0 && len(seed.Questions) == 0 {
		return nil, fmt.Errorf("%w: seed corpus %s has no sentences or questions", internalerr.ErrInvalidConfig, path)
	}

	return &seed, nil
}
