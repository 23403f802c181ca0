// Package config loads socialpath run settings from a TOML file.
//
// A missing path yields Default(). Fields absent from the file keep their
// defaults; CLI flags are applied on top by the caller.
//
//	# socialpath.toml
//	users = 1000
//	avg_friendships = 5
//	strategy = "exhaustive"   # or "rejection"
//	seed = 0                  # 0 = time-seeded
//	root = 1
//	max_attempts = 0          # rejection only, 0 = unbounded
//	sorted = false            # deterministic BFS tie-breaks
//	names = "decimal"         # decimal | user | excel
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a value outside its allowed domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults mirror the reference run: 1000 users, 5 friends on average, paths from user 1.
const (
	DefaultUsers          = 1000
	DefaultAvgFriendships = 5
	DefaultStrategy       = "exhaustive"
	DefaultRoot           = 1
	DefaultNames          = "decimal"
)

// Config holds every knob of a population + path-finding run.
type Config struct {
	Users          int    `toml:"users"`
	AvgFriendships int    `toml:"avg_friendships"`
	Strategy       string `toml:"strategy"`
	Seed           int64  `toml:"seed"`
	Root           int    `toml:"root"`
	MaxAttempts    int    `toml:"max_attempts"`
	Sorted         bool   `toml:"sorted"`
	Names          string `toml:"names"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Users:          DefaultUsers,
		AvgFriendships: DefaultAvgFriendships,
		Strategy:       DefaultStrategy,
		Root:           DefaultRoot,
		Names:          DefaultNames,
	}
}

// Load reads path over Default(). An empty path returns Default() unchanged.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks value domains. The populate package still re-validates its own inputs.
func (c Config) Validate() error {
	switch {
	case c.Users < 0:
		return fmt.Errorf("%w: users=%d < 0", ErrInvalidConfig, c.Users)
	case c.AvgFriendships < 0:
		return fmt.Errorf("%w: avg_friendships=%d < 0", ErrInvalidConfig, c.AvgFriendships)
	case c.Root < 1:
		return fmt.Errorf("%w: root=%d < 1", ErrInvalidConfig, c.Root)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: max_attempts=%d < 0", ErrInvalidConfig, c.MaxAttempts)
	}
	switch strings.ToLower(c.Strategy) {
	case "exhaustive", "shuffle", "rejection", "linear":
	default:
		return fmt.Errorf("%w: strategy %q", ErrInvalidConfig, c.Strategy)
	}
	return nil
}

// Write encodes c as TOML to path, e.g. to seed a config file from flags.
func (c Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
