package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// DefaultProfile decodes the profile compiled into the binary.
func DefaultProfile() (Profile, error) {
	return ParseProfile(defaultProfile)
}

// ParseProfile decodes and validates a YAML profile document.
func ParseProfile(raw []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) validate() error {
	var errs []error
	if p.Game.AppID == 0 {
		errs = append(errs, errors.New("game.app_id is required"))
	}
	if p.Framework.Owner == "" || p.Framework.Repo == "" {
		errs = append(errs, errors.New("framework.owner and framework.repo are required"))
	}
	if p.Framework.TempName == "" {
		errs = append(errs, errors.New("framework.temp_name is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return nil
}

// NewRun assembles the run configuration once the install directory is known.
func NewRun(opts Options, profile Profile, installDir string) *Run {
	return &Run{
		Options: opts,
		Profile: profile,
		Target: InstallTarget{
			InstallDirectory: installDir,
			Platform:         ParsePlatform(opts.Platform),
		},
	}
}
