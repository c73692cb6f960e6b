// Package launcher loads the launcher configuration file: per-platform
// sections carrying the document base path and the table of custom
// command item types.
package launcher

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/tidwall/jsonc"

	"github.com/atomicstack/popup-launcher/internal/template"
)

// CommandSpec defines one custom item type: a shell command template and
// the flag prefixes applied to its arguments during expansion.
type CommandSpec struct {
	Command  string            `json:"command"`
	ArgFlags map[string]string `json:"arg_flags"`
}

// Config is the launcher configuration for one platform.
type Config struct {
	Base     string
	Commands map[string]CommandSpec
}

// Command looks up the custom command spec for an item type.
func (c *Config) Command(itemType string) (CommandSpec, bool) {
	spec, ok := c.Commands[itemType]
	return spec, ok
}

// sectionNames maps a GOOS value to the accepted section keys. The
// capitalized aliases match configuration files written for the
// original Python launcher, which keyed sections by platform.system().
var sectionNames = map[string][]string{
	"linux":   {"linux", "Linux"},
	"darwin":  {"darwin", "Darwin"},
	"windows": {"windows", "Windows"},
}

// Load reads the configuration file and selects the section for the
// current platform.
func Load(path string) (*Config, error) {
	return LoadPlatform(path, runtime.GOOS)
}

// LoadPlatform reads the configuration file and selects the section for
// the given GOOS value. Comments and trailing commas in the file are
// tolerated.
func LoadPlatform(path, goos string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read launcher configuration %q: %w", path, err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &sections); err != nil {
		return nil, fmt.Errorf("parse launcher configuration %q: %w", path, err)
	}

	raw, ok := lookupSection(sections, goos)
	if !ok {
		return nil, fmt.Errorf("launcher configuration %q: no section for platform %q", path, goos)
	}
	cfg, err := parseSection(raw)
	if err != nil {
		return nil, fmt.Errorf("launcher configuration %q: %w", path, err)
	}
	return cfg, nil
}

func lookupSection(sections map[string]json.RawMessage, goos string) (json.RawMessage, bool) {
	names, ok := sectionNames[goos]
	if !ok {
		names = []string{goos}
	}
	for _, name := range names {
		if raw, ok := sections[name]; ok {
			return raw, true
		}
	}
	return nil, false
}

func parseSection(raw json.RawMessage) (*Config, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("platform section: %w", err)
	}

	cfg := &Config{Commands: make(map[string]CommandSpec)}
	for key, value := range fields {
		if key == "launcher_base" {
			if err := json.Unmarshal(value, &cfg.Base); err != nil {
				return nil, fmt.Errorf("launcher_base: %w", err)
			}
			continue
		}
		var spec CommandSpec
		if err := json.Unmarshal(value, &spec); err != nil {
			return nil, fmt.Errorf("custom type %q: %w", key, err)
		}
		if spec.Command == "" {
			return nil, fmt.Errorf("custom type %q: command template is mandatory", key)
		}
		// Misconfigured templates abort at load time rather than on
		// first use of the item type.
		if _, err := template.Placeholders(spec.Command); err != nil {
			return nil, fmt.Errorf("custom type %q: %w", key, err)
		}
		cfg.Commands[key] = spec
	}
	return cfg, nil
}
