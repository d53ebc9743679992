package pancam

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the config file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// CameraConfig is the initial camera placement. FOV is the vertical field of
// view in degrees.
type CameraConfig struct {
	X   float64 `toml:"x" yaml:"x"`
	Y   float64 `toml:"y" yaml:"y"`
	Z   float64 `toml:"z" yaml:"z"`
	FOV float64 `toml:"fov" yaml:"fov"`
}

// PlaneConfig is the content plane size in world units.
type PlaneConfig struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// InputConfig tunes the gesture tracker.
type InputConfig struct {
	HistorySize int `toml:"history_size" yaml:"history_size"`
}

// Config is the host-side configuration. The cores never see degrees:
// FOVRadians converts before a Camera is built.
type Config struct {
	Camera CameraConfig `toml:"camera" yaml:"camera"`
	Plane  PlaneConfig  `toml:"plane" yaml:"plane"`
	Input  InputConfig  `toml:"input" yaml:"input"`
	Debug  bool         `toml:"debug" yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{X: 0, Y: 0, Z: 5, FOV: 50},
		Plane:  PlaneConfig{Width: 10, Height: 6},
		Input:  InputConfig{HistorySize: DefaultHistorySize},
	}
}

// LoadConfig reads a config file. The format is chosen by extension:
// .toml, .yaml or .yml. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return Config{}, fmt.Errorf("pancam: unsupported config extension %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pancam: read config: %w", err)
	}
	return ParseConfig(data, format)
}

// ParseConfig decodes data on top of DefaultConfig and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("pancam: parse toml config: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("pancam: parse yaml config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("pancam: unknown config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry the cores would turn into NaN.
func (c Config) Validate() error {
	var errs []error
	if !(c.Plane.Width > 0) || !(c.Plane.Height > 0) {
		errs = append(errs, fmt.Errorf("plane size %vx%v must be positive", c.Plane.Width, c.Plane.Height))
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < 180) {
		errs = append(errs, fmt.Errorf("fov %v must be within (0, 180) degrees", c.Camera.FOV))
	}
	if !(c.Camera.Z > 0) {
		errs = append(errs, fmt.Errorf("camera z %v must be positive", c.Camera.Z))
	}
	if c.Input.HistorySize != 0 && c.Input.HistorySize < minHistorySize {
		errs = append(errs, fmt.Errorf("history size %d must be at least %d", c.Input.HistorySize, minHistorySize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("pancam: invalid config: %w", err)
	}
	return nil
}

// FOVRadians returns the configured field of view in radians.
func (c Config) FOVRadians() float64 {
	return c.Camera.FOV * math.Pi / 180
}

// PlaneSize returns the configured content plane.
func (c Config) PlaneSize() Plane {
	return Plane{Width: c.Plane.Width, Height: c.Plane.Height}
}

// NewCamera builds a camera for a surface with the given aspect ratio.
func (c Config) NewCamera(aspect float64) *Camera {
	return NewCamera(c.FOVRadians(), aspect, c.PlaneSize(), Vec3{X: c.Camera.X, Y: c.Camera.Y, Z: c.Camera.Z})
}

// TrackerOptions returns the tracker options implied by the config.
func (c Config) TrackerOptions() []TrackerOption {
	opts := []TrackerOption{WithDebug(c.Debug)}
	if c.Input.HistorySize > 0 {
		opts = append(opts, WithHistorySize(c.Input.HistorySize))
	}
	return opts
}
