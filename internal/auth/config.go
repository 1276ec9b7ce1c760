package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RolesConfig maps role names to the capabilities they grant. Authorization
// mechanics live outside this service; handlers only ask for a capability.
type RolesConfig struct {
	Roles map[string][]string `yaml:"roles"`
}

// LoadRolesConfig reads the role/capability mapping from a yaml file
func LoadRolesConfig(path string) (*RolesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roles config: %w", err)
	}

	var cfg RolesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse roles config: %w", err)
	}
	if len(cfg.Roles) == 0 {
		return nil, fmt.Errorf("roles config is empty")
	}

	return &cfg, nil
}

// HasCapability reports whether any of the given roles grants the capability
func (c *RolesConfig) HasCapability(roles []string, capability string) bool {
	for _, role := range roles {
		for _, granted := range c.Roles[role] {
			if granted == capability {
				return true
			}
		}
	}
	return false
}

// DefaultRolesConfig returns the built-in mapping used when no roles file is
// present. Directors hold every capability; section leaders run rehearsals
// and promotions; singers and musicians only read.
func DefaultRolesConfig() *RolesConfig {
	return &RolesConfig{
		Roles: map[string][]string{
			"director": {
				CapabilityManageShifts,
				CapabilityManagePerformances,
				CapabilityForceStatus,
				CapabilityManageRehearsals,
				CapabilityPromote,
			},
			"section_leader": {
				CapabilityManageRehearsals,
				CapabilityPromote,
			},
			"singer":   {},
			"musician": {},
		},
	}
}

// Capabilities consumed by route gating
const (
	CapabilityManageShifts       = "shifts:manage"
	CapabilityManagePerformances = "performances:manage"
	CapabilityForceStatus        = "performances:force-status"
	CapabilityManageRehearsals   = "rehearsals:manage"
	CapabilityPromote            = "rehearsals:promote"
)
