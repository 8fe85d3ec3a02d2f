package domain

// ExtractRequest is the payload for the API
type ExtractRequest struct {
	URL string `json:"url"`
}

// PropertyData holds the figures extracted from, or estimated for, a listing.
// Optional fields are nil when neither scraped nor estimated.
type PropertyData struct {
	Kaufpreis   *int     `json:"kaufpreis,omitempty"`
	Miete       *int     `json:"miete,omitempty"`
	Wohnflaeche *float64 `json:"wohnflaeche,omitempty"`
	Zimmer      *float64 `json:"zimmer,omitempty"`
	Nebenkosten *int     `json:"nebenkosten,omitempty"`
	Renovierung *int     `json:"renovierung,omitempty"`
	Grundsteuer *int     `json:"grundsteuer,omitempty"`
	Verwaltung  *int     `json:"verwaltung,omitempty"`
}

// HasPrice reports whether a purchase price was recovered.
func (p *PropertyData) HasPrice() bool {
	return p != nil && p.Kaufpreis != nil && *p.Kaufpreis > 0
}

// HealthResponse is the API response for the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
