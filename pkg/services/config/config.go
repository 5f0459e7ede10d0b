package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/spf13/viper"
)

const envPrefix = "PLAYBILL"

type Config struct {
	Tariff pricing.Tariff `mapstructure:"tariff"`
}

// Load reads the rate card from an optional config file (YAML, TOML or JSON)
// and PLAYBILL_* environment variables, on top of the default tariff.
// An empty path means defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, pricing.DefaultTariff())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tariff config: %w", err)
	}
	if err := cfg.Tariff.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tariff config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, t pricing.Tariff) {
	v.SetDefault("tariff.tragedy.base", t.Tragedy.Base)
	v.SetDefault("tariff.tragedy.threshold", t.Tragedy.Threshold)
	v.SetDefault("tariff.tragedy.overage_rate", t.Tragedy.OverageRate)

	v.SetDefault("tariff.comedy.base", t.Comedy.Base)
	v.SetDefault("tariff.comedy.threshold", t.Comedy.Threshold)
	v.SetDefault("tariff.comedy.overage_flat", t.Comedy.OverageFlat)
	v.SetDefault("tariff.comedy.overage_rate", t.Comedy.OverageRate)
	v.SetDefault("tariff.comedy.per_head_rate", t.Comedy.PerHeadRate)

	v.SetDefault("tariff.credits.base_threshold", t.Credits.BaseThreshold)
	v.SetDefault("tariff.credits.comedy_bonus_divisor", t.Credits.ComedyBonusDivisor)
}
