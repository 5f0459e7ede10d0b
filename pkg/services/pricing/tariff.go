package pricing

import "fmt"

// Tariff holds the rate card. All amounts are in currency subunits.
type Tariff struct {
	Tragedy TragedyRates `mapstructure:"tragedy"`
	Comedy  ComedyRates  `mapstructure:"comedy"`
	Credits CreditRules  `mapstructure:"credits"`
}

type TragedyRates struct {
	Base        int64 `mapstructure:"base"`
	Threshold   int   `mapstructure:"threshold"`
	OverageRate int64 `mapstructure:"overage_rate"`
}

type ComedyRates struct {
	Base        int64 `mapstructure:"base"`
	Threshold   int   `mapstructure:"threshold"`
	OverageFlat int64 `mapstructure:"overage_flat"`
	OverageRate int64 `mapstructure:"overage_rate"`
	PerHeadRate int64 `mapstructure:"per_head_rate"`
}

type CreditRules struct {
	BaseThreshold      int `mapstructure:"base_threshold"`
	ComedyBonusDivisor int `mapstructure:"comedy_bonus_divisor"`
}

func DefaultTariff() Tariff {
	return Tariff{
		Tragedy: TragedyRates{
			Base:        40000,
			Threshold:   30,
			OverageRate: 1000,
		},
		Comedy: ComedyRates{
			Base:        30000,
			Threshold:   20,
			OverageFlat: 10000,
			OverageRate: 500,
			PerHeadRate: 300,
		},
		Credits: CreditRules{
			BaseThreshold:      30,
			ComedyBonusDivisor: 5,
		},
	}
}

func (t Tariff) Validate() error {
	amounts := []struct {
		key   string
		value int64
	}{
		{"tragedy.base", t.Tragedy.Base},
		{"tragedy.threshold", int64(t.Tragedy.Threshold)},
		{"tragedy.overage_rate", t.Tragedy.OverageRate},
		{"comedy.base", t.Comedy.Base},
		{"comedy.threshold", int64(t.Comedy.Threshold)},
		{"comedy.overage_flat", t.Comedy.OverageFlat},
		{"comedy.overage_rate", t.Comedy.OverageRate},
		{"comedy.per_head_rate", t.Comedy.PerHeadRate},
		{"credits.base_threshold", int64(t.Credits.BaseThreshold)},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return fmt.Errorf("tariff %s cannot be negative: %d", a.key, a.value)
		}
	}
	if t.Credits.ComedyBonusDivisor <= 0 {
		return fmt.Errorf("tariff credits.comedy_bonus_divisor must be positive: %d", t.Credits.ComedyBonusDivisor)
	}
	return nil
}
