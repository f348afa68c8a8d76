// Package config loads and validates per-instance engine settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/fxcore/orders"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Instance holds the settings one strategy instance evaluates under.
type Instance struct {
	InstanceID       int     `json:"instance_id" yaml:"instance_id"`
	Symbol           string  `json:"symbol" yaml:"symbol"`
	TimeframeMinutes int     `json:"timeframe_minutes" yaml:"timeframe_minutes"`
	Mode             string  `json:"mode" yaml:"mode"` // "trading" or "monitor"
	RiskPercent      float64 `json:"risk_percent" yaml:"risk_percent"`
	MaxSpread        float64 `json:"max_spread" yaml:"max_spread"`

	ATRPeriod      int  `json:"atr_period" yaml:"atr_period"`
	TimedExitBars  int  `json:"timed_exit_bars,omitempty" yaml:"timed_exit_bars,omitempty"`
	MaxHoldingTime int  `json:"max_holding_time,omitempty" yaml:"max_holding_time,omitempty"`
	SpreadBetting  bool `json:"spread_betting,omitempty" yaml:"spread_betting,omitempty"`
	Backtesting    bool `json:"backtesting,omitempty" yaml:"backtesting,omitempty"`

	// EnforceFreeMargin opts entries into the worst-case free-margin
	// gate before an open signal is produced.
	EnforceFreeMargin bool `json:"enforce_free_margin,omitempty" yaml:"enforce_free_margin,omitempty"`

	// Z scales the elliptical estimator's confidence band.
	Z float64 `json:"z,omitempty" yaml:"z,omitempty"`

	UseInternalStop bool    `json:"use_internal_stop,omitempty" yaml:"use_internal_stop,omitempty"`
	UseInternalTake bool    `json:"use_internal_take,omitempty" yaml:"use_internal_take,omitempty"`
	TrailStart      float64 `json:"trail_start,omitempty" yaml:"trail_start,omitempty"`
	TrailDistance   float64 `json:"trail_distance,omitempty" yaml:"trail_distance,omitempty"`

	DisableCompounding bool    `json:"disable_compounding,omitempty" yaml:"disable_compounding,omitempty"`
	OriginalEquity     float64 `json:"original_equity,omitempty" yaml:"original_equity,omitempty"`

	Journal Journal `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// Journal selects where signal decisions are recorded.
type Journal struct {
	Type   string `json:"type,omitempty" yaml:"type,omitempty"` // "csv", "sqlite" or empty
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads an Instance from a YAML or JSON file, decided by
// extension, and validates it.
func LoadFromFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse json config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfiguration, filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Instance) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidConfiguration)
	}
	if c.TimeframeMinutes <= 0 {
		return fmt.Errorf("%w: timeframe_minutes must be positive, got %d", ErrInvalidConfiguration, c.TimeframeMinutes)
	}
	if c.RiskPercent < 0 {
		return fmt.Errorf("%w: risk_percent must not be negative, got %g", ErrInvalidConfiguration, c.RiskPercent)
	}
	if c.MaxSpread < 0 {
		return fmt.Errorf("%w: max_spread must not be negative, got %g", ErrInvalidConfiguration, c.MaxSpread)
	}
	if c.ATRPeriod < 0 {
		return fmt.Errorf("%w: atr_period must not be negative, got %d", ErrInvalidConfiguration, c.ATRPeriod)
	}
	if c.MaxHoldingTime < 0 {
		return fmt.Errorf("%w: max_holding_time must not be negative, got %d", ErrInvalidConfiguration, c.MaxHoldingTime)
	}
	switch c.Mode {
	case "", "trading", "monitor":
	default:
		return fmt.Errorf("%w: mode must be \"trading\" or \"monitor\", got %q", ErrInvalidConfiguration, c.Mode)
	}
	if c.DisableCompounding && c.OriginalEquity <= 0 {
		return fmt.Errorf("%w: original_equity must be positive when compounding is disabled", ErrInvalidConfiguration)
	}
	switch c.Journal.Type {
	case "", "csv", "sqlite":
	default:
		return fmt.Errorf("%w: journal type must be \"csv\" or \"sqlite\", got %q", ErrInvalidConfiguration, c.Journal.Type)
	}
	return nil
}

// OrdersParams maps the instance settings onto one evaluation's
// parameter block.
func (c *Instance) OrdersParams() orders.Params {
	mode := orders.ModeTrading
	if c.Mode == "monitor" {
		mode = orders.ModeMonitor
	}
	return orders.Params{
		InstanceID:        c.InstanceID,
		Symbol:            c.Symbol,
		Mode:              mode,
		RiskPercent:       c.RiskPercent,
		MaxSpread:         c.MaxSpread,
		TimedExitBars:     c.TimedExitBars,
		ATRPeriod:         c.ATRPeriod,
		TimeframeMinutes:  c.TimeframeMinutes,
		UseInternalStop:   c.UseInternalStop,
		UseInternalTake:   c.UseInternalTake,
		SpreadBetting:     c.SpreadBetting,
		Backtesting:       c.Backtesting,
		EnforceFreeMargin: c.EnforceFreeMargin,
	}
}
