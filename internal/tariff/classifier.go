package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/domain"
)

// Thresholds hold the earnings boundaries for tier promotion. They are
// configuration so the business can tune them without touching the engine.
type Thresholds struct {
	EliteTotal     decimal.Decimal
	EliteMonthly   decimal.Decimal
	PremiumTotal   decimal.Decimal
	PremiumMonthly decimal.Decimal
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		EliteTotal:     decimal.NewFromInt(500_000),
		EliteMonthly:   decimal.NewFromInt(100_000),
		PremiumTotal:   decimal.NewFromInt(100_000),
		PremiumMonthly: decimal.NewFromInt(25_000),
	}
}

type Classifier struct {
	thresholds Thresholds
}

func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds}
}

// Classify maps cumulative and current-month earnings to a reward tier.
// Pure and idempotent: equal inputs always yield the same tier.
func (c *Classifier) Classify(totalEarnings, monthlyEarnings decimal.Decimal) domain.Tier {
	t := c.thresholds
	switch {
	case totalEarnings.GreaterThanOrEqual(t.EliteTotal) || monthlyEarnings.GreaterThanOrEqual(t.EliteMonthly):
		return domain.TierElite
	case totalEarnings.GreaterThanOrEqual(t.PremiumTotal) || monthlyEarnings.GreaterThanOrEqual(t.PremiumMonthly):
		return domain.TierPremium
	default:
		return domain.TierStandard
	}
}

var tierRank = map[domain.Tier]int{
	domain.TierStandard: 0,
	domain.TierPremium:  1,
	domain.TierElite:    2,
}

// MaxTier returns the higher of two tiers. Total earnings never decrease,
// so classification alone never demotes on the total axis; monthly
// earnings reset every period, and promotions are kept sticky across
// that reset.
func MaxTier(a, b domain.Tier) domain.Tier {
	if tierRank[b] > tierRank[a] {
		return b
	}
	return a
}
