package service

import (
	"sort"

	"github.com/samber/lo"

	"github.com/buildhaven/billing-dashboard/internal/config"
	"github.com/buildhaven/billing-dashboard/internal/domain/entitlement"
	"github.com/buildhaven/billing-dashboard/internal/domain/price"
	"github.com/buildhaven/billing-dashboard/internal/domain/subscription"
	"github.com/buildhaven/billing-dashboard/internal/types"
)

// adjustableQuantityFeatureName always renders last: it is the one
// entitlement with a direct quantity control in the dashboard, and the
// control sits at the bottom of the list regardless of display order.
const adjustableQuantityFeatureName = "Concurrent Builds"

// EntitlementService derives the display-ready entitlement features
// for a subscription. Derivation is pure and deterministic: the same
// subscription, instance config and reference date always produce the
// same feature list, so it is safe to re-run on every refresh.
type EntitlementService interface {
	// DeriveFeatures computes the ordered entitlement feature list for
	// a subscription. today is a YYYY-MM-DD reference date supplied by
	// the caller.
	DeriveFeatures(sub *subscription.Subscription, instance config.InstanceConfig, today string) []entitlement.Feature
}

type entitlementService struct {
	ServiceParams
}

func NewEntitlementService(params ServiceParams) EntitlementService {
	return &entitlementService{ServiceParams: params}
}

func (s *entitlementService) DeriveFeatures(
	sub *subscription.Subscription,
	instance config.InstanceConfig,
	today string,
) []entitlement.Feature {
	// Nothing to derive while plan or interval data has not loaded.
	// This is the only case that yields an empty result; malformed
	// per-price data degrades per price instead.
	if sub == nil || sub.Plan == nil || len(sub.Plan.Prices) == 0 || len(sub.PriceIntervals) == 0 {
		return []entitlement.Feature{}
	}

	// Active intervals keyed by price id. The provider does not allow
	// two simultaneously active intervals for one price, so a plain
	// overwrite on collision is safe (last one wins).
	activeIntervals := make(map[string]subscription.PriceInterval)
	for _, interval := range sub.PriceIntervals {
		if interval.IsActive(today) {
			activeIntervals[interval.Price.ID] = interval
		}
	}

	features := make([]entitlement.Feature, 0, len(sub.Plan.Prices))
	processed := make(map[string]bool, len(sub.Plan.Prices))

	// Plan baseline first
	for i := range sub.Plan.Prices {
		p := &sub.Plan.Prices[i]
		processed[p.ID] = true
		if p.IsPlatformFee() {
			continue
		}
		features = append(features, s.deriveFeature(p, activeIntervals, instance, today))
	}

	// Then genuine add-ons: active intervals whose price is not in the
	// plan baseline ex extra concurrent builds, observability events
	for _, interval := range sub.PriceIntervals {
		if !interval.IsActive(today) || processed[interval.Price.ID] {
			continue
		}
		processed[interval.Price.ID] = true
		if interval.Price.IsPlatformFee() {
			continue
		}
		p := interval.Price
		features = append(features, s.deriveFeature(&p, activeIntervals, instance, today))
	}

	sortFeatures(features, instance.DisplayOrder)
	return moveAdjustableQuantityLast(features)
}

func (s *entitlementService) deriveFeature(
	p *price.Price,
	activeIntervals map[string]subscription.PriceInterval,
	instance config.InstanceConfig,
	today string,
) entitlement.Feature {
	var override config.AddOnConfig
	name := p.Item.Name
	if key, ok := instance.ResolveAddOnKey(p.ID); ok {
		override = instance.AddOns[key]
		name = config.AddOnDisplayName(key)
	}

	interpreted := InterpretPrice(p, override)

	feature := entitlement.Feature{
		Name:                   name,
		BaseValue:              interpreted.BaseValue,
		OverageInfo:            interpreted.OverageInfo,
		RawQuantity:            interpreted.RawQuantity,
		RawOveragePrice:        interpreted.RawOveragePrice,
		TierDetails:            interpreted.TierDetails,
		ShowDetailed:           interpreted.ShowDetailed,
		IsAdjustableFixedPrice: isAdjustableFixedPrice(p, instance),
		PriceID:                p.ID,
	}

	interval, hasInterval := activeIntervals[p.ID]
	if !hasInterval {
		return feature
	}
	feature.PriceIntervalID = interval.ID

	if p.Type == types.PRICE_TYPE_FIXED {
		schedule := ScheduleStatus(interval.FixedFeeQuantityTransitions, today)
		feature.StatusText = schedule.StatusText
		feature.FutureTransitions = schedule.FutureTransitions
	} else {
		feature.StatusText = UsageIntervalStatus(interval.StartDate, today)
	}

	return feature
}

// isAdjustableFixedPrice marks fixed-fee items whose quantity the
// customer may edit from the dashboard. The platform fee and the
// instance's denylist ex an included-allocation line item are never
// adjustable.
func isAdjustableFixedPrice(p *price.Price, instance config.InstanceConfig) bool {
	return p.Type == types.PRICE_TYPE_FIXED &&
		!p.IsPlatformFee() &&
		!lo.Contains(instance.NonAdjustableItems, p.Item.Name)
}

// sortFeatures orders by position in displayOrder; names not listed
// sort after all listed ones, alphabetically among themselves
func sortFeatures(features []entitlement.Feature, displayOrder []string) {
	sort.SliceStable(features, func(i, j int) bool {
		a := lo.IndexOf(displayOrder, features[i].Name)
		b := lo.IndexOf(displayOrder, features[j].Name)
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		case b >= 0:
			return false
		default:
			return features[i].Name < features[j].Name
		}
	})
}

// moveAdjustableQuantityLast re-appends the adjustable quantity
// feature at the very end, overriding its display-order position
func moveAdjustableQuantityLast(features []entitlement.Feature) []entitlement.Feature {
	idx := lo.IndexOf(lo.Map(features, func(f entitlement.Feature, _ int) string {
		return f.Name
	}), adjustableQuantityFeatureName)
	if idx < 0 {
		return features
	}
	moved := features[idx]
	features = append(features[:idx], features[idx+1:]...)
	return append(features, moved)
}
