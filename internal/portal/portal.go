// Package portal knows where each supported listing portal keeps its
// figures and turns a fetched page into domain.PropertyData.
package portal

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/expose-extractor/internal/domain"
	"github.com/user/expose-extractor/internal/estimator"
	"github.com/user/expose-extractor/internal/parser"
)

// Portal describes one supported listing website.
type Portal struct {
	Name      string
	Domain    string
	Selectors Selectors
	// RentIsAnnual marks portals that publish yearly rental income.
	RentIsAnnual bool
}

var (
	ImmobilienScout24 = Portal{
		Name:         "ImmobilienScout24",
		Domain:       "immobilienscout24.de",
		Selectors:    immobilienScout24Selectors,
		RentIsAnnual: true,
	}
	Immowelt = Portal{
		Name:      "Immowelt",
		Domain:    "immowelt.de",
		Selectors: immoweltSelectors,
	}
)

// All is the list of supported portals in lookup order.
var All = []Portal{ImmobilienScout24, Immowelt}

// Resolve finds the portal whose domain is contained in host, ignoring case.
func Resolve(host string) (Portal, bool) {
	host = strings.ToLower(host)
	for _, p := range All {
		if strings.Contains(host, p.Domain) {
			return p, true
		}
	}
	return Portal{}, false
}

// Names returns the display names of all supported portals.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, p := range All {
		names = append(names, p.Name)
	}
	return names
}

// ExtractHTML parses htmlContent and extracts the listing figures.
func (p Portal) ExtractHTML(htmlContent string, est *estimator.Estimator) (*domain.PropertyData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	return p.Extract(doc, est), nil
}

// Extract reads price, rent, area and rooms from doc and fills in the
// estimates. A missing price is not an error here; the caller decides.
func (p Portal) Extract(doc *goquery.Document, est *estimator.Estimator) *domain.PropertyData {
	data := &domain.PropertyData{}

	if price, ok := parser.ExtractPrice(firstText(doc, p.Selectors.Price)); ok && price > 0 {
		data.Kaufpreis = &price
	}

	if rentText := firstText(doc, p.Selectors.Rent); rentText != "" {
		if rent, ok := parser.ExtractPrice(rentText); ok && rent > 0 {
			if p.RentIsAnnual {
				rent = int(math.Round(float64(rent) / 12))
			}
			data.Miete = &rent
		}
	}

	if area, ok := parser.ExtractArea(firstText(doc, p.Selectors.Area)); ok {
		data.Wohnflaeche = &area
	}

	if rooms, ok := parser.ExtractRooms(firstText(doc, p.Selectors.Rooms)); ok && rooms > 0 {
		data.Zimmer = &rooms
	}

	est.Apply(data)
	return data
}

// firstText returns the trimmed text of the first query with a non-empty match.
func firstText(doc *goquery.Document, queries []Query) string {
	for _, q := range queries {
		sel := doc.Find(q.CSS)
		if q.First {
			sel = sel.First()
		}
		if q.Next {
			sel = sel.Next()
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			return text
		}
	}
	return ""
}
