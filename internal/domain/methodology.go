package domain

import "github.com/shopspring/decimal"

// StandardLevyRate is the 2.5% levy applied unless a methodology overrides it.
var StandardLevyRate = decimal.RequireFromString("0.025")

// MethodologyRules is the strategy a methodology supplies to the engine.
type MethodologyRules struct {
	Methodology  Methodology
	DefaultBasis ThresholdBasis
	// LowerOfBoth compares against min(gold, silver) instead of the record basis.
	LowerOfBoth bool
	// RateOverride allows a record-level levy rate.
	RateOverride bool
	excluded     map[AssetCategory]struct{}
}

// IsEligible reports whether assets of category c count toward eligible wealth.
// Liabilities are handled separately and are never "eligible".
func (r MethodologyRules) IsEligible(c AssetCategory) bool {
	if c == AssetCategoryLiability {
		return false
	}
	_, skip := r.excluded[c]
	return !skip
}

// LevyRate returns the rate to apply given an optional requested override.
func (r MethodologyRules) LevyRate(requested *decimal.Decimal) decimal.Decimal {
	if r.RateOverride && requested != nil {
		return *requested
	}
	return StandardLevyRate
}

func excludes(cats ...AssetCategory) map[AssetCategory]struct{} {
	m := make(map[AssetCategory]struct{}, len(cats))
	for _, c := range cats {
		m[c] = struct{}{}
	}
	return m
}

var methodologyTable = map[Methodology]MethodologyRules{
	MethodologyStandard: {
		Methodology:  MethodologyStandard,
		DefaultBasis: ThresholdBasisGold,
		excluded:     excludes(AssetCategoryPersonalUse, AssetCategoryRealEstate),
	},
	MethodologyVariantA: {
		Methodology:  MethodologyVariantA,
		DefaultBasis: ThresholdBasisSilver,
		LowerOfBoth:  true,
		excluded:     excludes(AssetCategoryPersonalUse),
	},
	MethodologyVariantB: {
		Methodology:  MethodologyVariantB,
		DefaultBasis: ThresholdBasisGold,
		excluded:     excludes(AssetCategoryPersonalUse, AssetCategoryRealEstate, AssetCategoryRetirement),
	},
	MethodologyCustom: {
		Methodology:  MethodologyCustom,
		DefaultBasis: ThresholdBasisGold,
		RateOverride: true,
		excluded:     excludes(AssetCategoryPersonalUse),
	},
}

// RulesFor returns the rules for m. ok is false for unknown methodologies.
func RulesFor(m Methodology) (MethodologyRules, bool) {
	r, ok := methodologyTable[m]
	return r, ok
}
