package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/domain/entitlement"
	"github.com/buildhaven/billing-dashboard/internal/domain/price"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// InterpretedPrice is the display-oriented reading of one price: its
// current value, overage description and raw numbers for cost-delta
// calculations. It is a pure projection of the price definition.
type InterpretedPrice struct {
	BaseValue       string
	OverageInfo     string
	RawQuantity     *decimal.Decimal
	RawOveragePrice *decimal.Decimal
	TierDetails     []entitlement.TierDetail
	ShowDetailed    bool
}

// Fallback display strings for malformed or unexpected price configs.
// The dashboard must render something usable even when the provider
// returns shapes we cannot interpret.
const (
	fallbackUsage         = "Usage-based"
	fallbackTiered        = "Usage-based (tiered)"
	fallbackPackage       = "Usage-based (package)"
	fallbackTieredPackage = "Usage-based (tiered package)"
	fallbackFixed         = "-"

	// tierDetailsMarker in BaseValue tells the presentation layer to
	// render TierDetails instead of a single value
	tierDetailsMarker = "Tier Details"
)

// InterpretPrice computes the display value for one price. override is
// the resolved add-on config for this price, or the zero value when
// the price maps to no add-on key.
//
// The function never fails: malformed configs degrade to generic
// fallback strings, never to an error or a missing feature.
func InterpretPrice(p *price.Price, override config.AddOnConfig) InterpretedPrice {
	if p.Type == types.PRICE_TYPE_FIXED {
		return interpretFixedPrice(p)
	}
	return interpretUsagePrice(p, override)
}

func interpretFixedPrice(p *price.Price) InterpretedPrice {
	out := InterpretedPrice{BaseValue: fallbackFixed}
	if p.FixedPriceQuantity == nil {
		return out
	}

	quantity := *p.FixedPriceQuantity
	out.BaseValue = types.FormatCompactNumber(quantity)
	out.RawQuantity = &quantity

	switch p.ModelType {
	case types.PRICE_MODEL_TIERED:
		// The second tier, when present with a positive per-unit
		// amount, is the overage rate beyond the included quantity.
		if p.TieredConfig == nil || len(p.TieredConfig.Tiers) < 2 {
			break
		}
		amount, ok := p.TieredConfig.Tiers[1].Amount()
		if !ok || !amount.IsPositive() {
			break
		}
		out.OverageInfo = fmt.Sprintf("(then %s / %s)",
			types.FormatCurrencyValue(amount, p.Currency), overageUnitNoun(p.Item.Name))
		out.RawOveragePrice = &amount
	case types.PRICE_MODEL_UNIT:
		if amount, ok := p.UnitConfig.Amount(); ok && !amount.IsNegative() {
			out.RawOveragePrice = &amount
		}
	}

	return out
}

func interpretUsagePrice(p *price.Price, override config.AddOnConfig) InterpretedPrice {
	out := InterpretedPrice{}

	// A configured display value wins over every model-derived value,
	// for add-ons whose raw config carries no human-friendly rate.
	if override.ActiveDisplayValue != "" {
		out.BaseValue = override.ActiveDisplayValue
		if amount, ok := p.UnitConfig.Amount(); ok && !amount.IsNegative() {
			out.RawOveragePrice = &amount
		}
		return out
	}

	noun := usageUnitNoun(p.Item.Name, override.UnitNoun)

	switch p.ModelType {
	case types.PRICE_MODEL_TIERED_PACKAGE:
		interpretTieredPackage(p, noun, &out)
	case types.PRICE_MODEL_PACKAGE:
		interpretPackage(p, noun, &out)
	case types.PRICE_MODEL_TIERED:
		interpretUsageTiers(p, noun, &out)
	case types.PRICE_MODEL_UNIT:
		interpretUsageUnit(p, noun, &out)
	default:
		out.BaseValue = fallbackUsage
	}

	return out
}

func interpretTieredPackage(p *price.Price, noun string, out *InterpretedPrice) {
	cfg := p.TieredPackageConfig
	if cfg == nil || len(cfg.Tiers) == 0 {
		out.BaseValue = fallbackTieredPackage
		return
	}

	first := cfg.Tiers[0]
	amount, ok := first.Amount()
	switch {
	case first.PackageAmount == "0.00" && first.LastUnit != nil:
		out.BaseValue = fmt.Sprintf("First %s %s: Free",
			types.FormatCompactNumber(*first.LastUnit), noun)
	case ok && first.LastUnit != nil && first.PackageSize != nil && first.PackageSize.IsPositive():
		out.BaseValue = fmt.Sprintf("First %s %s: %s / %s %s",
			types.FormatCompactNumber(*first.LastUnit), noun,
			types.FormatCurrencyValue(amount, p.Currency),
			types.FormatCompactNumber(*first.PackageSize), noun)
	default:
		out.BaseValue = fallbackTieredPackage
	}

	if len(cfg.Tiers) < 2 {
		return
	}
	second := cfg.Tiers[1]
	amount, ok = second.Amount()
	if ok && !amount.IsNegative() && second.PackageSize != nil && second.PackageSize.IsPositive() {
		out.OverageInfo = fmt.Sprintf("(then %s / %s %s)",
			types.FormatCurrencyValue(amount, p.Currency),
			types.FormatCompactNumber(*second.PackageSize), noun)
	}
}

func interpretPackage(p *price.Price, noun string, out *InterpretedPrice) {
	cfg := p.PackageConfig
	if cfg == nil {
		out.BaseValue = fallbackPackage
		return
	}

	amount, ok := types.ParseAmount(cfg.PackageAmount)
	switch {
	case cfg.PackageAmount == "0.00" && cfg.PackageSize != nil:
		out.BaseValue = fmt.Sprintf("%s %s: Free",
			types.FormatCompactNumber(*cfg.PackageSize), noun)
	case ok && amount.IsPositive() && cfg.PackageSize != nil:
		out.BaseValue = fmt.Sprintf("%s / %s %s",
			types.FormatCurrencyValue(amount, p.Currency),
			types.FormatCompactNumber(*cfg.PackageSize), noun)
	default:
		out.BaseValue = fallbackPackage
	}
}

func interpretUsageTiers(p *price.Price, noun string, out *InterpretedPrice) {
	cfg := p.TieredConfig
	if cfg == nil || len(cfg.Tiers) == 0 {
		out.BaseValue = fallbackTiered
		return
	}

	details := make([]entitlement.TierDetail, 0, len(cfg.Tiers))
	for _, tier := range cfg.Tiers {
		details = append(details, entitlement.TierDetail{
			Range: tierRange(tier),
			Rate:  tierRate(tier, p.Currency, noun),
		})
	}

	out.BaseValue = tierDetailsMarker
	out.ShowDetailed = true
	out.TierDetails = details
}

func interpretUsageUnit(p *price.Price, noun string, out *InterpretedPrice) {
	amount, ok := p.UnitConfig.Amount()
	if ok && amount.IsPositive() {
		out.BaseValue = fmt.Sprintf("%s / %s",
			types.FormatCurrencyValue(amount, p.Currency), noun)
		return
	}

	out.BaseValue = "Included"
	if p.UnitConfig == nil || (ok && amount.IsZero()) {
		// No charge and no cap
		out.OverageInfo = "Unlimited"
	}
}

func tierRange(tier price.Tier) string {
	switch {
	case tier.FirstUnit == nil && tier.LastUnit == nil:
		return "0-∞"
	case tier.FirstUnit == nil:
		return "0-" + types.FormatCompactNumber(*tier.LastUnit)
	case tier.LastUnit == nil:
		return types.FormatCompactNumber(*tier.FirstUnit) + "-∞"
	default:
		return types.FormatCompactNumber(*tier.FirstUnit) + "-" + types.FormatCompactNumber(*tier.LastUnit)
	}
}

func tierRate(tier price.Tier, currency, noun string) string {
	amount, ok := tier.Amount()
	if !ok || amount.IsZero() {
		return "Free"
	}
	return fmt.Sprintf("%s per %s", types.FormatCurrencyValue(amount, currency), noun)
}

// overageUnitNoun names the unit in a fixed-price overage rate. Item
// names with "Build" as a standalone word read as builds; everything
// else falls back to the generic noun.
func overageUnitNoun(itemName string) string {
	for _, word := range strings.Fields(itemName) {
		if word == "Build" {
			return "build"
		}
	}
	return "additional unit"
}

// usageUnitNoun names the unit in usage-price rates, preferring a
// configured override and falling back to the last word of the item
// name lowercased ex "API Requests" -> "requests"
func usageUnitNoun(itemName, override string) string {
	if override != "" {
		return override
	}
	words := strings.Fields(itemName)
	if len(words) == 0 {
		return "unit"
	}
	return strings.ToLower(words[len(words)-1])
}
