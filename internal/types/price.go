package types

import (
	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
)

// PriceType is the provider's price category ex fixed_price, usage_price
type PriceType string

// PriceModelType is the provider's pricing model for a price
// ex unit, tiered, package, tiered_package
type PriceModelType string

const (
	PRICE_TYPE_FIXED PriceType = "fixed_price"
	PRICE_TYPE_USAGE PriceType = "usage_price"

	// Flat amount per unit
	PRICE_MODEL_UNIT PriceModelType = "unit"

	// Per-unit amount varies by tier ex 0-1 free, then 5.00 per unit
	PRICE_MODEL_TIERED PriceModelType = "tiered"

	// Flat amount per package of units ex 1.00 per 1000 requests
	PRICE_MODEL_PACKAGE PriceModelType = "package"

	// Package amount varies by tier ex first 100k free, then 0.50 per 10k
	PRICE_MODEL_TIERED_PACKAGE PriceModelType = "tiered_package"

	// PLATFORM_FEE_ITEM_NAME is the provider's bookkeeping line item.
	// It is never surfaced as a customer entitlement.
	PLATFORM_FEE_ITEM_NAME = "Platform Fee"
)

func (t PriceType) Validate() error {
	switch t {
	case PRICE_TYPE_FIXED, PRICE_TYPE_USAGE:
		return nil
	}
	return ierr.NewError("invalid price type").
		WithHintf("price type %s is not supported", t).
		Mark(ierr.ErrValidation)
}

func (m PriceModelType) Validate() error {
	switch m {
	case PRICE_MODEL_UNIT, PRICE_MODEL_TIERED, PRICE_MODEL_PACKAGE, PRICE_MODEL_TIERED_PACKAGE:
		return nil
	}
	return ierr.NewError("invalid price model type").
		WithHintf("price model %s is not supported", m).
		Mark(ierr.ErrValidation)
}
