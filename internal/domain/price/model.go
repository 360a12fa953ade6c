package price

import (
	"github.com/shopspring/decimal"

	"github.com/buildhaven/billing-dashboard/internal/types"
)

// Price is a provider-defined pricing rule attached either to a plan
// or to a subscription's price interval. Prices are immutable once
// fetched; all amounts arrive as provider strings and are parsed
// defensively at the point of use.
//
// Exactly one of the model configs is meaningful for a given
// ModelType; the others are nil. The interpreter switches on ModelType
// and falls back to a generic display string when the matching config
// is absent or malformed.
type Price struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Type      types.PriceType      `json:"price_type"`
	ModelType types.PriceModelType `json:"model_type"`
	Currency  string               `json:"currency"`
	Item      Item                 `json:"item"`

	// FixedPriceQuantity is the billed quantity for fixed prices
	FixedPriceQuantity *decimal.Decimal `json:"fixed_price_quantity,omitempty"`

	UnitConfig          *UnitConfig          `json:"unit_config,omitempty"`
	TieredConfig        *TieredConfig        `json:"tiered_config,omitempty"`
	PackageConfig       *PackageConfig       `json:"package_config,omitempty"`
	TieredPackageConfig *TieredPackageConfig `json:"tiered_package_config,omitempty"`
}

// Item is the billable item a price charges for
type Item struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UnitConfig is a flat per-unit amount
type UnitConfig struct {
	UnitAmount string `json:"unit_amount"`
}

// TieredConfig prices units by usage tier
type TieredConfig struct {
	Tiers []Tier `json:"tiers"`
}

// Tier is one band of a tiered price. LastUnit is nil for the
// open-ended final tier; FirstUnit is nil when the provider omits the
// lower bound on the first tier.
type Tier struct {
	FirstUnit  *decimal.Decimal `json:"first_unit,omitempty"`
	LastUnit   *decimal.Decimal `json:"last_unit,omitempty"`
	UnitAmount string           `json:"unit_amount"`
}

// PackageConfig charges a flat amount per package of units
type PackageConfig struct {
	PackageAmount string           `json:"package_amount"`
	PackageSize   *decimal.Decimal `json:"package_size,omitempty"`
}

// TieredPackageConfig prices packages of units by usage tier
type TieredPackageConfig struct {
	Tiers []PackageTier `json:"tiers"`
}

// PackageTier is one band of a tiered package price
type PackageTier struct {
	PackageAmount string           `json:"package_amount"`
	PackageSize   *decimal.Decimal `json:"package_size,omitempty"`
	LastUnit      *decimal.Decimal `json:"last_unit,omitempty"`
}

// IsPlatformFee reports whether this price is the provider's platform
// fee line item, which is never surfaced as an entitlement
func (p *Price) IsPlatformFee() bool {
	return p.Item.Name == types.PLATFORM_FEE_ITEM_NAME
}

// DisplayName is the raw display name for the price: the explicit
// price name when present, else the item name
func (p *Price) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Item.Name
}

// Amount parses the unit amount of a UnitConfig. ok is false when the
// config is absent or non-numeric.
func (c *UnitConfig) Amount() (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Zero, false
	}
	return types.ParseAmount(c.UnitAmount)
}

// Amount parses the per-unit amount of a tier
func (t Tier) Amount() (decimal.Decimal, bool) {
	return types.ParseAmount(t.UnitAmount)
}

// Amount parses the per-package amount of a package tier
func (t PackageTier) Amount() (decimal.Decimal, bool) {
	return types.ParseAmount(t.PackageAmount)
}
