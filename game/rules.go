package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules are the per-round knobs. Positions and the damage table are fixed.
type Rules struct {
	MaxLife         int           `yaml:"max_life"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	PoseDuration    time.Duration `yaml:"pose_duration"`
	BlockMitigation int           `yaml:"block_mitigation"`
}

func DefaultRules() Rules {
	return Rules{
		MaxLife:         MaxLife,
		TickInterval:    TickInterval,
		PoseDuration:    PoseDuration,
		BlockMitigation: BlockMitigation,
	}
}

func (r Rules) Validate() error {
	switch {
	case r.MaxLife <= 0:
		return fmt.Errorf("%w: max_life must be positive, got %d", ErrInvalidRules, r.MaxLife)
	case r.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidRules, r.TickInterval)
	case r.PoseDuration <= 0:
		return fmt.Errorf("%w: pose_duration must be positive, got %s", ErrInvalidRules, r.PoseDuration)
	case r.BlockMitigation < 0:
		return fmt.Errorf("%w: block_mitigation must not be negative, got %d", ErrInvalidRules, r.BlockMitigation)
	}
	return nil
}

// LoadRules reads a YAML rules file over DefaultRules. An empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	return ParseRules(b)
}

func ParseRules(b []byte) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}
