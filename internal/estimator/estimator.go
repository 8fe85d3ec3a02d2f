// Package estimator derives investment figures from a purchase price.
package estimator

import (
	"math"

	"github.com/user/expose-extractor/internal/domain"
)

// Rates are the fixed percentages and unit prices the estimates are based on.
type Rates struct {
	RentPerSqm      float64 // currency units per m² and month
	AnnualYield     float64
	TransactionCost float64
	Renovation      float64
	PropertyTax     float64 // annual
	Management      float64 // annual
}

// DefaultRates returns the rates for the German market.
func DefaultRates() Rates {
	return Rates{
		RentPerSqm:      10,
		AnnualYield:     0.04,
		TransactionCost: 0.10,
		Renovation:      0.05,
		PropertyTax:     0.0015,
		Management:      0.004,
	}
}

// Costs are the price-derived figures. They are always computed together.
type Costs struct {
	Nebenkosten int
	Renovierung int
	Grundsteuer int
	Verwaltung  int
}

// Estimator computes estimates from a fixed set of Rates.
type Estimator struct {
	rates Rates
}

func New(rates Rates) *Estimator {
	return &Estimator{rates: rates}
}

// Rates returns a copy of the rates the estimator was built with.
func (e *Estimator) Rates() Rates {
	return e.rates
}

// MonthlyRent estimates rent from the living area when known, otherwise
// from the annual yield on the purchase price.
func (e *Estimator) MonthlyRent(price int, area *float64) int {
	if area != nil && *area > 0 {
		return round(*area * e.rates.RentPerSqm)
	}
	return round(float64(price) * e.rates.AnnualYield / 12)
}

func (e *Estimator) Costs(price int) Costs {
	p := float64(price)
	return Costs{
		Nebenkosten: round(p * e.rates.TransactionCost),
		Renovierung: round(p * e.rates.Renovation),
		Grundsteuer: round(p * e.rates.PropertyTax),
		Verwaltung:  round(p * e.rates.Management),
	}
}

// Apply fills in a missing rent and attaches all cost fields. Data without
// a purchase price is left untouched.
func (e *Estimator) Apply(data *domain.PropertyData) {
	if !data.HasPrice() {
		return
	}
	price := *data.Kaufpreis

	if data.Miete == nil || *data.Miete == 0 {
		rent := e.MonthlyRent(price, data.Wohnflaeche)
		data.Miete = &rent
	}

	costs := e.Costs(price)
	data.Nebenkosten = &costs.Nebenkosten
	data.Renovierung = &costs.Renovierung
	data.Grundsteuer = &costs.Grundsteuer
	data.Verwaltung = &costs.Verwaltung
}

func round(v float64) int {
	return int(math.Round(v))
}
