package estimator

import (
	"testing"

	"github.com/user/expose-extractor/internal/domain"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestMonthlyRent(t *testing.T) {
	e := New(DefaultRates())

	tests := []struct {
		name  string
		price int
		area  *float64
		want  int
	}{
		{"from area", 300000, floatPtr(85), 850},
		{"from fractional area", 300000, floatPtr(72.6), 726},
		{"from yield", 300000, nil, 1000},
		{"zero area falls back to yield", 300000, floatPtr(0), 1000},
		{"yield rounds", 250000, nil, 833},
	}

	for _, tt := range tests {
		if got := e.MonthlyRent(tt.price, tt.area); got != tt.want {
			t.Errorf("%s: MonthlyRent(%d) = %d; want %d", tt.name, tt.price, got, tt.want)
		}
	}
}

func TestCosts(t *testing.T) {
	e := New(DefaultRates())

	got := e.Costs(350000)
	want := Costs{Nebenkosten: 35000, Renovierung: 17500, Grundsteuer: 525, Verwaltung: 1400}
	if got != want {
		t.Errorf("Costs(350000) = %+v; want %+v", got, want)
	}

	// 0.15% of 333333 is 499.9995.
	if got := e.Costs(333333).Grundsteuer; got != 500 {
		t.Errorf("Grundsteuer(333333) = %d; want 500", got)
	}
}

func TestCostsDependOnPriceOnly(t *testing.T) {
	e := New(DefaultRates())

	withArea := &domain.PropertyData{Kaufpreis: intPtr(420000), Wohnflaeche: floatPtr(120)}
	withRent := &domain.PropertyData{Kaufpreis: intPtr(420000), Miete: intPtr(1700)}
	bare := &domain.PropertyData{Kaufpreis: intPtr(420000)}
	for _, d := range []*domain.PropertyData{withArea, withRent, bare} {
		e.Apply(d)
	}

	for _, d := range []*domain.PropertyData{withRent, bare} {
		if *d.Nebenkosten != *withArea.Nebenkosten ||
			*d.Renovierung != *withArea.Renovierung ||
			*d.Grundsteuer != *withArea.Grundsteuer ||
			*d.Verwaltung != *withArea.Verwaltung {
			t.Errorf("costs differ for equal price: %+v vs %+v", d, withArea)
		}
	}

	if e.Costs(420000) != e.Costs(420000) {
		t.Error("Costs is not idempotent")
	}
}

func TestApply(t *testing.T) {
	e := New(DefaultRates())

	t.Run("estimates rent from area", func(t *testing.T) {
		d := &domain.PropertyData{Kaufpreis: intPtr(350000), Wohnflaeche: floatPtr(90)}
		e.Apply(d)
		if d.Miete == nil || *d.Miete != 900 {
			t.Fatalf("Miete = %v; want 900", d.Miete)
		}
		if *d.Nebenkosten != 35000 || *d.Renovierung != 17500 || *d.Grundsteuer != 525 || *d.Verwaltung != 1400 {
			t.Errorf("unexpected costs: %+v", d)
		}
	})

	t.Run("keeps scraped rent", func(t *testing.T) {
		d := &domain.PropertyData{Kaufpreis: intPtr(350000), Miete: intPtr(1234), Wohnflaeche: floatPtr(90)}
		e.Apply(d)
		if *d.Miete != 1234 {
			t.Errorf("Miete = %d; want 1234", *d.Miete)
		}
	})

	t.Run("zero rent is re-estimated", func(t *testing.T) {
		d := &domain.PropertyData{Kaufpreis: intPtr(300000), Miete: intPtr(0)}
		e.Apply(d)
		if *d.Miete != 1000 {
			t.Errorf("Miete = %d; want 1000", *d.Miete)
		}
	})

	t.Run("no price leaves data untouched", func(t *testing.T) {
		d := &domain.PropertyData{Wohnflaeche: floatPtr(90)}
		e.Apply(d)
		if d.Miete != nil || d.Nebenkosten != nil || d.Renovierung != nil || d.Grundsteuer != nil || d.Verwaltung != nil {
			t.Errorf("expected no estimates without price, got %+v", d)
		}
	})
}

func TestCustomRates(t *testing.T) {
	rates := DefaultRates()
	rates.RentPerSqm = 12
	rates.TransactionCost = 0.12
	e := New(rates)

	if got := e.MonthlyRent(0, floatPtr(50)); got != 600 {
		t.Errorf("MonthlyRent = %d; want 600", got)
	}
	if got := e.Costs(100000).Nebenkosten; got != 12000 {
		t.Errorf("Nebenkosten = %d; want 12000", got)
	}
	if e.Rates() != rates {
		t.Errorf("Rates() = %+v; want %+v", e.Rates(), rates)
	}
}
