// Package wealth aggregates a user's selected assets into total and
// eligible wealth under a methodology's rules.
package wealth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// Aggregate sums the assets whose ids appear in refs. Assets held in a
// currency other than currency are skipped and counted. Liabilities reduce
// both total and eligible wealth; categories the methodology excludes count
// toward total wealth only. Eligible wealth is never negative.
func Aggregate(assets []domain.Asset, refs []uuid.UUID, rules domain.MethodologyRules, currency string) domain.WealthSummary {
	selected := make(map[uuid.UUID]struct{}, len(refs))
	for _, id := range refs {
		selected[id] = struct{}{}
	}

	var (
		gross       = decimal.Zero
		eligible    = decimal.Zero
		liabilities = decimal.Zero
		out         domain.WealthSummary
	)
	for _, a := range assets {
		if _, ok := selected[a.ID]; !ok {
			continue
		}
		if !strings.EqualFold(a.Currency, currency) {
			out.SkippedCurrency++
			continue
		}

		value := a.Value
		if a.Category == domain.AssetCategoryLiability {
			value = value.Abs()
			liabilities = liabilities.Add(value)
		} else {
			gross = gross.Add(value)
		}

		isEligible := rules.IsEligible(a.Category)
		if isEligible {
			eligible = eligible.Add(value)
		}
		out.Assets = append(out.Assets, domain.AssetValue{
			AssetID:  a.ID,
			Category: a.Category,
			Value:    value,
			Currency: strings.ToUpper(a.Currency),
			Eligible: isEligible,
		})
	}

	out.Liabilities = liabilities
	out.TotalWealth = gross.Sub(liabilities)
	out.EligibleWealth = eligible.Sub(liabilities)
	if out.EligibleWealth.IsNegative() {
		out.EligibleWealth = decimal.Zero
	}
	return out
}

// AssetIDs returns the ids of assets, preserving order.
func AssetIDs(assets []domain.Asset) []uuid.UUID {
	ids := make([]uuid.UUID, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	return ids
}
