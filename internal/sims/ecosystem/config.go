package ecosystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// DefaultTickUnit advances the clock by one week per tick.
const DefaultTickUnit = 1.0 / 52

// Config controls the world dimensions, seed and clock granularity. Rule
// rates are fixed constants and are not part of the config.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// TickUnit is the fraction of a simulated year one tick represents.
	TickUnit float64 `yaml:"tick_unit"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    70,
		Height:   30,
		Seed:     1337,
		TickUnit: DefaultTickUnit,
	}
}

// Validate rejects configurations no world can be built from.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "width", Value: c.Width, Err: ErrInvalidDimensions}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "height", Value: c.Height, Err: ErrInvalidDimensions}
	}
	if !(c.TickUnit > 0) || math.IsInf(c.TickUnit, 0) {
		return &ConfigError{Field: "tick_unit", Value: c.TickUnit, Err: ErrInvalidTickUnit}
	}
	return nil
}

type keySetter func(c *Config, v string) error

func setWidth(c *Config, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	c.Width = n
	return nil
}

func setHeight(c *Config, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	c.Height = n
	return nil
}

func setSeed(c *Config, v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	c.Seed = n
	return nil
}

func setTickUnit(c *Config, v string) error {
	f, err := parseTickUnit(v)
	if err != nil {
		return err
	}
	c.TickUnit = f
	return nil
}

var configKeys = map[string]keySetter{
	"w":         setWidth,
	"width":     setWidth,
	"h":         setHeight,
	"height":    setHeight,
	"seed":      setSeed,
	"tick_unit": setTickUnit,
}

// parseTickUnit accepts plain floats and "1/N" fractions such as "1/52".
func parseTickUnit(v string) (float64, error) {
	if i := strings.IndexByte(v, '/'); i > 0 {
		num, err := strconv.ParseFloat(v[:i], 64)
		if err != nil {
			return 0, err
		}
		den, err := strconv.ParseFloat(v[i+1:], 64)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, ErrInvalidTickUnit
		}
		return num / den, nil
	}
	return strconv.ParseFloat(v, 64)
}

// ConfigKeys lists the keys accepted by FromMap and ApplyOverride.
func ConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyOverride sets a single key=value pair on cfg. Unknown keys fail with
// ErrUnknownKey and carry the nearest known key as a suggestion.
func ApplyOverride(cfg *Config, key, value string) error {
	set, ok := configKeys[key]
	if !ok {
		return &ConfigError{Field: key, Value: value, Suggestion: suggestKey(key), Err: ErrUnknownKey}
	}
	next := *cfg
	if err := set(&next, value); err != nil {
		return &ConfigError{Field: key, Value: value, Err: err}
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = next
	return nil
}

func suggestKey(key string) string {
	best := ""
	bestDist := -1
	for _, cand := range ConfigKeys() {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 2:
		return 1
	case length <= 6:
		return 2
	default:
		return 3
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or validate are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for _, k := range ConfigKeys() {
		if v, ok := cfg[k]; ok {
			_ = ApplyOverride(&c, k, v)
		}
	}
	return c
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults;
// unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
