package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/booster-catch/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix namespaces environment overrides, e.g. BOOSTER_FPS
const EnvPrefix = "BOOSTER"

// Keys double as flag names, env suffixes and TOML keys
const (
	KeyFPS              = "fps"
	KeyColor            = "color"
	KeyAudio            = "audio"
	KeyCountdown        = "countdown"
	KeyCountdownSeconds = "countdown-seconds"
	KeyHeadless         = "headless"
	KeyHeadlessEvery    = "headless-every"
	KeyMetricsAddr      = "metrics-addr"
	KeyDebug            = "debug"
	KeyLogDir           = "log-dir"
	KeyHold             = "hold"
	KeySeed             = "seed"
	KeyConfig           = "config"
	KeyWriteConfig      = "write-config"
)

var colorModes = []string{"auto", "truecolor", "24bit", "256", "mono", "none"}

// Config holds runtime settings; the flight scenario itself is not configurable
type Config struct {
	FPS              int
	Color            string
	Audio            bool
	Countdown        bool
	CountdownSeconds int
	Headless         bool
	HeadlessEvery    int
	MetricsAddr      string
	Debug            bool
	LogDir           string
	Hold             time.Duration
	Seed             uint64

	// Not persisted
	File        string
	WriteConfig string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:              parameter.TickRate,
		Color:            "auto",
		Audio:            true,
		Countdown:        true,
		CountdownSeconds: parameter.CountdownFrom,
		HeadlessEvery:    parameter.HeadlessEvery,
		LogDir:           "logs",
		Hold:             parameter.FinalHold,
		Seed:             1,
	}
}

// NewFlagSet declares every setting as a flag with the built-in defaults
func NewFlagSet(name string) *pflag.FlagSet {
	d := Default()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int(KeyFPS, d.FPS, "simulation ticks (and frames) per second")
	fs.String(KeyColor, d.Color, "color mode: auto, truecolor, 256, mono")
	fs.Bool(KeyAudio, d.Audio, "play sound effects")
	fs.Bool(KeyCountdown, d.Countdown, "show the launch countdown")
	fs.Int(KeyCountdownSeconds, d.CountdownSeconds, "countdown length in seconds")
	fs.Bool(KeyHeadless, d.Headless, "print telemetry to stdout instead of drawing")
	fs.Int(KeyHeadlessEvery, d.HeadlessEvery, "ticks between headless telemetry prints")
	fs.String(KeyMetricsAddr, d.MetricsAddr, "serve /metrics and /telemetry on this address")
	fs.Bool(KeyDebug, d.Debug, "write a debug log")
	fs.String(KeyLogDir, d.LogDir, "directory for the debug log")
	fs.Duration(KeyHold, d.Hold, "how long the final frame stays on screen")
	fs.Uint64(KeySeed, d.Seed, "star field seed")
	fs.String(KeyConfig, "", "TOML settings file")
	fs.String(KeyWriteConfig, "", "write the effective settings to this TOML file and exit")
	return fs
}

// Load resolves settings with precedence flag > env > file > default
func Load(args []string) (Config, error) {
	fs := NewFlagSet("booster-catch")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return FromFlags(fs)
}

// FromFlags resolves settings from an already parsed flag set
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		FPS:              v.GetInt(KeyFPS),
		Color:            strings.ToLower(v.GetString(KeyColor)),
		Audio:            v.GetBool(KeyAudio),
		Countdown:        v.GetBool(KeyCountdown),
		CountdownSeconds: v.GetInt(KeyCountdownSeconds),
		Headless:         v.GetBool(KeyHeadless),
		HeadlessEvery:    v.GetInt(KeyHeadlessEvery),
		MetricsAddr:      v.GetString(KeyMetricsAddr),
		Debug:            v.GetBool(KeyDebug),
		LogDir:           v.GetString(KeyLogDir),
		Hold:             v.GetDuration(KeyHold),
		Seed:             v.GetUint64(KeySeed),
		File:             v.GetString(KeyConfig),
		WriteConfig:      v.GetString(KeyWriteConfig),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyFPS, d.FPS)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyAudio, d.Audio)
	v.SetDefault(KeyCountdown, d.Countdown)
	v.SetDefault(KeyCountdownSeconds, d.CountdownSeconds)
	v.SetDefault(KeyHeadless, d.Headless)
	v.SetDefault(KeyHeadlessEvery, d.HeadlessEvery)
	v.SetDefault(KeyMetricsAddr, d.MetricsAddr)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyLogDir, d.LogDir)
	v.SetDefault(KeyHold, d.Hold)
	v.SetDefault(KeySeed, d.Seed)
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	var errs []error
	if c.FPS < parameter.MinTickRate || c.FPS > parameter.MaxTickRate {
		errs = append(errs, fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalid, c.FPS, parameter.MinTickRate, parameter.MaxTickRate))
	}
	if !validColor(c.Color) {
		errs = append(errs, fmt.Errorf("%w: color %q, want one of %s", ErrInvalid, c.Color, strings.Join(colorModes, ", ")))
	}
	if c.CountdownSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: countdown-seconds %d is negative", ErrInvalid, c.CountdownSeconds))
	}
	if c.HeadlessEvery < 1 {
		errs = append(errs, fmt.Errorf("%w: headless-every %d must be at least 1", ErrInvalid, c.HeadlessEvery))
	}
	if c.Hold < 0 {
		errs = append(errs, fmt.Errorf("%w: hold %s is negative", ErrInvalid, c.Hold))
	}
	return errors.Join(errs...)
}

func validColor(s string) bool {
	for _, m := range colorModes {
		if s == m {
			return true
		}
	}
	return false
}

// fileConfig is the on-disk shape; durations are stored as strings
type fileConfig struct {
	FPS              int    `toml:"fps"`
	Color            string `toml:"color"`
	Audio            bool   `toml:"audio"`
	Countdown        bool   `toml:"countdown"`
	CountdownSeconds int    `toml:"countdown-seconds"`
	Headless         bool   `toml:"headless"`
	HeadlessEvery    int    `toml:"headless-every"`
	MetricsAddr      string `toml:"metrics-addr"`
	Debug            bool   `toml:"debug"`
	LogDir           string `toml:"log-dir"`
	Hold             string `toml:"hold"`
	Seed             uint64 `toml:"seed"`
}

// Marshal encodes the persisted settings as TOML
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(fileConfig{
		FPS:              c.FPS,
		Color:            c.Color,
		Audio:            c.Audio,
		Countdown:        c.Countdown,
		CountdownSeconds: c.CountdownSeconds,
		Headless:         c.Headless,
		HeadlessEvery:    c.HeadlessEvery,
		MetricsAddr:      c.MetricsAddr,
		Debug:            c.Debug,
		LogDir:           c.LogDir,
		Hold:             c.Hold.String(),
		Seed:             c.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Write saves the persisted settings to path
func (c Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
