package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSampleCount is used when neither a profile nor a flag gives a count
const DefaultSampleCount = 5

// Profile holds the sampling configuration loaded from a YAML file
type Profile struct {
	// Seed for the randomness source; 0 means time-based
	Seed int64 `yaml:"seed"`

	// Count is the number of samples per expression
	Count int `yaml:"count"`

	// Expressions are type expressions to sample, in addition to any
	// given on the command line.
	Expressions []string `yaml:"expressions"`
}

// LoadProfile reads and validates a YAML profile
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if profile.Count <= 0 {
		profile.Count = DefaultSampleCount
	}

	return &profile, nil
}
