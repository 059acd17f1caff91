package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tagcloud/cloudpack"
	"tagcloud/wordfreq"
)

// Options holds every setting of a tag cloud run. Flags are bound directly to these fields;
// a config file, when given, fills in whatever the flags did not set explicitly.
type Options struct {
	Output     string         `yaml:"output" toml:"output"`         // image path, format from extension
	LayoutPath string         `yaml:"layout" toml:"layout"`         // layout JSON path, "" derives it from Output
	NoLayout   bool           `yaml:"no-layout" toml:"no-layout"`   // skip writing the layout JSON
	Limit      int            `yaml:"limit" toml:"limit"`           // keep the most frequent N tags, 0 keeps all
	MinLength  int            `yaml:"min-length" toml:"min-length"` // drop shorter words
	Font       wordfreq.Scale `yaml:"font" toml:"font"`             // font size range in points
	DPI        float64        `yaml:"dpi" toml:"dpi"`               // font resolution
	Ordering   string         `yaml:"ordering" toml:"ordering"`     // see cloudpack.Orderings
	Search     string         `yaml:"search" toml:"search"`         // continue or center
	Step       float64        `yaml:"step" toml:"step"`             // spiral angle step in radians
	Density    float64        `yaml:"density" toml:"density"`       // spiral radius growth per radian
	Padding    int            `yaml:"padding" toml:"padding"`       // empty space around each label
	Margin     int            `yaml:"margin" toml:"margin"`         // empty space around the cloud
	Width      int            `yaml:"width" toml:"width"`           // fit the image into this width, 0 keeps natural size
	Height     int            `yaml:"height" toml:"height"`         // fit the image into this height, 0 keeps natural size
	Background string         `yaml:"background" toml:"background"` // hex or named color
	Palette    []string       `yaml:"palette" toml:"palette"`       // label colors, cycled
	Boxes      bool           `yaml:"boxes" toml:"boxes"`           // outline each label's rectangle
	Timeout    time.Duration  `yaml:"timeout" toml:"timeout"`       // bound on the layout phase, 0 disables
}

// DefaultOptions returns the settings used when neither flags nor a config file say otherwise.
func DefaultOptions() Options {
	return Options{
		Output:     "cloud.png",
		Font:       wordfreq.Scale{Min: 12, Max: 72},
		DPI:        72,
		Ordering:   "input",
		Search:     "continue",
		Step:       cloudpack.DefaultStep,
		Density:    cloudpack.DefaultDensity,
		Padding:    2,
		Margin:     16,
		Background: "#ffffff",
		Palette:    []string{"#1b4965", "#5fa8d3", "#ca6702", "#9b2226", "#386641", "#6a4c93"},
		Timeout:    time.Minute,
	}
}

// ConfigError reports an invalid setting.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadConfigFile decodes a YAML (.yaml, .yml) or TOML (.toml) file over opts. Keys missing
// from the file leave the current values alone.
func LoadConfigFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Message: fmt.Sprintf("read %s", path), Err: err}
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, opts)
	case ".toml":
		_, err = toml.Decode(string(data), opts)
	default:
		return &ConfigError{Message: fmt.Sprintf("unsupported config format %q", ext)}
	}
	if err != nil {
		return &ConfigError{Message: fmt.Sprintf("parse %s", path), Err: err}
	}
	return nil
}

// Validate checks the settings that cannot be corrected silently.
func (o *Options) Validate() error {
	if o.Output == "" {
		return &ConfigError{Field: "output", Message: "required field is missing"}
	}
	if err := o.Font.Validate(); err != nil {
		return &ConfigError{Field: "font", Message: err.Error(), Err: err}
	}
	if o.DPI <= 0 {
		return &ConfigError{Field: "dpi", Message: "must be positive"}
	}
	if _, err := cloudpack.ResolveOrdering(o.Ordering); err != nil {
		return &ConfigError{Field: "ordering", Message: fmt.Sprintf("must be one of %s", strings.Join(cloudpack.Orderings, ", ")), Err: err}
	}
	if _, err := cloudpack.ParseSearchMode(o.Search); err != nil {
		return &ConfigError{Field: "search", Message: "must be continue or center", Err: err}
	}
	if o.Step <= 0 || o.Density <= 0 {
		return &ConfigError{Field: "step", Message: "spiral step and density must be positive"}
	}
	counts := []struct {
		field string
		value int
	}{
		{"limit", o.Limit}, {"min-length", o.MinLength}, {"padding", o.Padding},
		{"margin", o.Margin}, {"width", o.Width}, {"height", o.Height},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &ConfigError{Field: c.field, Message: "must not be negative"}
		}
	}
	if _, err := parseColor(o.Background); err != nil {
		return &ConfigError{Field: "background", Message: err.Error(), Err: err}
	}
	if len(o.Palette) == 0 {
		return &ConfigError{Field: "palette", Message: "needs at least one color"}
	}
	for _, c := range o.Palette {
		if _, err := parseColor(c); err != nil {
			return &ConfigError{Field: "palette", Message: err.Error(), Err: err}
		}
	}
	return nil
}

// layoutPath returns where the layout JSON goes, or "" when it is disabled.
func (o *Options) layoutPath() string {
	if o.NoLayout {
		return ""
	}
	if o.LayoutPath != "" {
		return o.LayoutPath
	}
	return strings.TrimSuffix(o.Output, filepath.Ext(o.Output)) + ".json"
}

// packerOptions translates the spiral settings for cloudpack.
func (o *Options) packerOptions() ([]cloudpack.Option, cloudpack.SortFunc, error) {
	mode, err := cloudpack.ParseSearchMode(o.Search)
	if err != nil {
		return nil, nil, err
	}
	sortFunc, err := cloudpack.ResolveOrdering(o.Ordering)
	if err != nil {
		return nil, nil, err
	}
	return []cloudpack.Option{
		cloudpack.WithStep(o.Step),
		cloudpack.WithDensity(o.Density),
		cloudpack.WithSearch(mode),
	}, sortFunc, nil
}
