// Package seed loads the fixed list of activities the directory starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

//go:embed activities.yaml
var defaultSeed []byte

// File is the root structure of a seed YAML document.
type File struct {
	Activities []model.Activity `yaml:"activities" validate:"required,min=1,dive"`
}

// Default returns the activities bundled with the binary.
func Default() ([]model.Activity, error) {
	return Parse(defaultSeed)
}

// Load reads activities from path, or the bundled list when path is empty.
func Load(path string) ([]model.Activity, error) {
	if path == "" {
		return Default()
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	activities, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return activities, nil
}

// Parse decodes and validates a seed document.
func Parse(content []byte) ([]model.Activity, error) {
	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	return file.Activities, nil
}
