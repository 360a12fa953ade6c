package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/domain/price"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestInterpretFixedPriceTieredOverage(t *testing.T) {
	p := &price.Price{
		ID:                 "price_cb",
		Type:               types.PRICE_TYPE_FIXED,
		ModelType:          types.PRICE_MODEL_TIERED,
		Currency:           "USD",
		Item:               price.Item{Name: "Concurrent Builds"},
		FixedPriceQuantity: decPtr("3"),
		TieredConfig: &price.TieredConfig{
			Tiers: []price.Tier{
				{LastUnit: decPtr("3"), UnitAmount: "0.00"},
				{FirstUnit: decPtr("3"), UnitAmount: "5.00"},
			},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "3", out.BaseValue)
	assert.Equal(t, "(then $5.00 / additional unit)", out.OverageInfo)
	assert.True(t, out.RawQuantity.Equal(dec("3")))
	assert.True(t, out.RawOveragePrice.Equal(dec("5")))
	assert.False(t, out.ShowDetailed)
}

func TestInterpretFixedPriceBuildNoun(t *testing.T) {
	p := &price.Price{
		Type:               types.PRICE_TYPE_FIXED,
		ModelType:          types.PRICE_MODEL_TIERED,
		Currency:           "USD",
		Item:               price.Item{Name: "Extra Build Capacity"},
		FixedPriceQuantity: decPtr("2"),
		TieredConfig: &price.TieredConfig{
			Tiers: []price.Tier{
				{UnitAmount: "0.00"},
				{UnitAmount: "10.00"},
			},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "(then $10.00 / build)", out.OverageInfo)
}

func TestInterpretFixedPriceMissingQuantity(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_FIXED,
		ModelType: types.PRICE_MODEL_UNIT,
		Currency:  "USD",
		Item:      price.Item{Name: "Seats"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "-", out.BaseValue)
	assert.Nil(t, out.RawQuantity)
	assert.Nil(t, out.RawOveragePrice)
}

func TestInterpretFixedPriceUnitRawAmount(t *testing.T) {
	p := &price.Price{
		Type:               types.PRICE_TYPE_FIXED,
		ModelType:          types.PRICE_MODEL_UNIT,
		Currency:           "USD",
		Item:               price.Item{Name: "Seats"},
		FixedPriceQuantity: decPtr("4"),
		UnitConfig:         &price.UnitConfig{UnitAmount: "10.00"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "4", out.BaseValue)
	assert.Empty(t, out.OverageInfo)
	assert.True(t, out.RawOveragePrice.Equal(dec("10")))
}

func TestInterpretFixedPriceMalformedTiers(t *testing.T) {
	tests := []struct {
		name string
		cfg  *price.TieredConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "single tier", cfg: &price.TieredConfig{Tiers: []price.Tier{{UnitAmount: "0.00"}}}},
		{name: "non numeric overage", cfg: &price.TieredConfig{Tiers: []price.Tier{
			{UnitAmount: "0.00"},
			{UnitAmount: "n/a"},
		}}},
		{name: "zero overage", cfg: &price.TieredConfig{Tiers: []price.Tier{
			{UnitAmount: "0.00"},
			{UnitAmount: "0.00"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &price.Price{
				Type:               types.PRICE_TYPE_FIXED,
				ModelType:          types.PRICE_MODEL_TIERED,
				Currency:           "USD",
				Item:               price.Item{Name: "Concurrent Builds"},
				FixedPriceQuantity: decPtr("3"),
				TieredConfig:       tt.cfg,
			}
			out := InterpretPrice(p, config.AddOnConfig{})
			assert.Equal(t, "3", out.BaseValue)
			assert.Empty(t, out.OverageInfo)
			assert.Nil(t, out.RawOveragePrice)
		})
	}
}

func TestInterpretUsagePackageFree(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_PACKAGE,
		Currency:  "USD",
		Item:      price.Item{Name: "API Requests"},
		PackageConfig: &price.PackageConfig{
			PackageAmount: "0.00",
			PackageSize:   decPtr("1000"),
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "1,000 requests: Free", out.BaseValue)
}

func TestInterpretUsagePackagePaid(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_PACKAGE,
		Currency:  "USD",
		Item:      price.Item{Name: "API Requests"},
		PackageConfig: &price.PackageConfig{
			PackageAmount: "0.10",
			PackageSize:   decPtr("1000"),
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "$0.10 / 1,000 requests", out.BaseValue)
}

func TestInterpretUsagePackageFallback(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_PACKAGE,
		Currency:  "USD",
		Item:      price.Item{Name: "API Requests"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Usage-based (package)", out.BaseValue)
}

func TestInterpretUsageTieredPackage(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_TIERED_PACKAGE,
		Currency:  "USD",
		Item:      price.Item{Name: "API Requests"},
		TieredPackageConfig: &price.TieredPackageConfig{
			Tiers: []price.PackageTier{
				{PackageAmount: "0.00", PackageSize: decPtr("1000"), LastUnit: decPtr("10000")},
				{PackageAmount: "1.00", PackageSize: decPtr("1000")},
			},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "First 10,000 requests: Free", out.BaseValue)
	assert.Equal(t, "(then $1.00 / 1,000 requests)", out.OverageInfo)
}

func TestInterpretUsageTieredPackagePaidFirstTier(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_TIERED_PACKAGE,
		Currency:  "USD",
		Item:      price.Item{Name: "Observability Events"},
		TieredPackageConfig: &price.TieredPackageConfig{
			Tiers: []price.PackageTier{
				{PackageAmount: "0.50", PackageSize: decPtr("1000"), LastUnit: decPtr("1000000")},
			},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "First 1M events: $0.50 / 1,000 events", out.BaseValue)
	assert.Empty(t, out.OverageInfo)
}

func TestInterpretUsageTieredPackageFallback(t *testing.T) {
	p := &price.Price{
		Type:                types.PRICE_TYPE_USAGE,
		ModelType:           types.PRICE_MODEL_TIERED_PACKAGE,
		Currency:            "USD",
		Item:                price.Item{Name: "API Requests"},
		TieredPackageConfig: &price.TieredPackageConfig{},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Usage-based (tiered package)", out.BaseValue)
}

func TestInterpretUsageTiers(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_TIERED,
		Currency:  "USD",
		Item:      price.Item{Name: "Build Minutes"},
		TieredConfig: &price.TieredConfig{
			Tiers: []price.Tier{
				{LastUnit: decPtr("500"), UnitAmount: "0.00"},
				{FirstUnit: decPtr("500"), UnitAmount: "0.05"},
			},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Tier Details", out.BaseValue)
	assert.True(t, out.ShowDetailed)
	if assert.Len(t, out.TierDetails, 2) {
		assert.Equal(t, "0-500", out.TierDetails[0].Range)
		assert.Equal(t, "Free", out.TierDetails[0].Rate)
		assert.Equal(t, "500-∞", out.TierDetails[1].Range)
		assert.Equal(t, "$0.05 per minutes", out.TierDetails[1].Rate)
	}
}

func TestInterpretUsageTiersOpenRange(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_TIERED,
		Currency:  "USD",
		Item:      price.Item{Name: "Build Minutes"},
		TieredConfig: &price.TieredConfig{
			Tiers: []price.Tier{{UnitAmount: "0.00"}},
		},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	if assert.Len(t, out.TierDetails, 1) {
		assert.Equal(t, "0-∞", out.TierDetails[0].Range)
		assert.Equal(t, "Free", out.TierDetails[0].Rate)
	}
}

func TestInterpretUsageUnit(t *testing.T) {
	p := &price.Price{
		Type:       types.PRICE_TYPE_USAGE,
		ModelType:  types.PRICE_MODEL_UNIT,
		Currency:   "USD",
		Item:       price.Item{Name: "Observability Events"},
		UnitConfig: &price.UnitConfig{UnitAmount: "0.008"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "$0.008 / events", out.BaseValue)
}

func TestInterpretUsageUnitZeroAmount(t *testing.T) {
	p := &price.Price{
		Type:       types.PRICE_TYPE_USAGE,
		ModelType:  types.PRICE_MODEL_UNIT,
		Currency:   "USD",
		Item:       price.Item{Name: "Observability Events"},
		UnitConfig: &price.UnitConfig{UnitAmount: "0.00"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Included", out.BaseValue)
	assert.Equal(t, "Unlimited", out.OverageInfo)
}

func TestInterpretUsageUnitMissingConfig(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PRICE_MODEL_UNIT,
		Currency:  "USD",
		Item:      price.Item{Name: "Observability Events"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Included", out.BaseValue)
	assert.Equal(t, "Unlimited", out.OverageInfo)
}

func TestInterpretUsageActiveDisplayValueOverride(t *testing.T) {
	p := &price.Price{
		Type:       types.PRICE_TYPE_USAGE,
		ModelType:  types.PRICE_MODEL_UNIT,
		Currency:   "USD",
		Item:       price.Item{Name: "Premium Models"},
		UnitConfig: &price.UnitConfig{UnitAmount: "0.02"},
	}

	out := InterpretPrice(p, config.AddOnConfig{ActiveDisplayValue: "Enabled"})
	assert.Equal(t, "Enabled", out.BaseValue)
	assert.Empty(t, out.OverageInfo)
	assert.True(t, out.RawOveragePrice.Equal(dec("0.02")))
}

func TestInterpretUsageUnitNounOverride(t *testing.T) {
	p := &price.Price{
		Type:       types.PRICE_TYPE_USAGE,
		ModelType:  types.PRICE_MODEL_UNIT,
		Currency:   "USD",
		Item:       price.Item{Name: "Observability Events"},
		UnitConfig: &price.UnitConfig{UnitAmount: "0.008"},
	}

	out := InterpretPrice(p, config.AddOnConfig{UnitNoun: "event"})
	assert.Equal(t, "$0.008 / event", out.BaseValue)
}

func TestInterpretUsageUnknownModel(t *testing.T) {
	p := &price.Price{
		Type:      types.PRICE_TYPE_USAGE,
		ModelType: types.PriceModelType("matrix"),
		Currency:  "USD",
		Item:      price.Item{Name: "API Requests"},
	}

	out := InterpretPrice(p, config.AddOnConfig{})
	assert.Equal(t, "Usage-based", out.BaseValue)
}
