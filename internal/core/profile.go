package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileFileName is the optional per-project review profile looked up by the
// CLI and terminal clients next to the reviewed file.
const ProfileFileName = ".snippet-warden.yml"

// ReviewProfile tunes the review prompt for a project. All fields are
// optional; zero values fall back to the generic reviewer persona.
type ReviewProfile struct {
	// Language hints the snippet's programming language to the model.
	Language string `yaml:"language"`
	// Focus lists review aspects to emphasize, e.g. "security", "performance".
	Focus []string `yaml:"focus"`
	// Instructions is free-form text appended to the review prompt.
	Instructions string `yaml:"instructions"`
}

// DefaultReviewProfile returns the profile used when no profile file exists.
func DefaultReviewProfile() *ReviewProfile {
	return &ReviewProfile{}
}

// LoadReviewProfile reads and parses a review profile from path. A missing
// file is not an error; the default profile is returned instead.
func LoadReviewProfile(path string) (*ReviewProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultReviewProfile(), nil
		}
		return nil, fmt.Errorf("failed to read review profile %s: %w", path, err)
	}

	profile := DefaultReviewProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse review profile %s: %w", path, err)
	}
	return profile, nil
}
