package cache

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

func (st storedThreshold) toDomain() (domain.Threshold, error) {
	value, err := decimal.NewFromString(st.Value)
	if err != nil {
		return domain.Threshold{}, err
	}
	price, err := decimal.NewFromString(st.PricePerGram)
	if err != nil {
		return domain.Threshold{}, err
	}
	grams, err := decimal.NewFromString(st.Grams)
	if err != nil {
		return domain.Threshold{}, err
	}
	return domain.Threshold{
		Basis:        domain.ThresholdBasis(st.Basis),
		Value:        value,
		PricePerGram: price,
		Grams:        grams,
		Currency:     st.Currency,
		AsOf:         st.AsOf,
		Fallback:     st.Fallback,
	}, nil
}
