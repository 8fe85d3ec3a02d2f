package portal

// Query locates one text fragment in a listing page.
type Query struct {
	CSS   string
	First bool // only the first match, otherwise the text of all matches
	Next  bool // read the following sibling, for label/value pairs
}

// Selectors lists the queries per field in priority order.
type Selectors struct {
	Price []Query
	Rent  []Query
	Area  []Query
	Rooms []Query
}

var immobilienScout24Selectors = Selectors{
	Price: []Query{
		{CSS: `[data-qa="expose-price"]`, First: true},
		{CSS: `.is24qa-kaufpreis`, First: true},
		{CSS: `dd[class*="kaufpreis"]`, First: true},
	},
	// Annual rental income, see Portal.RentIsAnnual.
	Rent: []Query{
		{CSS: `[data-qa="mieteinnahmen"]`},
		{CSS: `.is24qa-mieteinnahmen`},
		{CSS: `dd:contains("Mieteinnahmen")`},
	},
	Area: []Query{
		{CSS: `[data-qa="expose-wohnflaeche"]`},
		{CSS: `.is24qa-wohnflaeche`},
	},
	Rooms: []Query{
		{CSS: `[data-qa="expose-zimmer"]`, First: true},
		{CSS: `.is24qa-zi`, First: true},
	},
}

// Immowelt does not publish rental income on its listing pages.
var immoweltSelectors = Selectors{
	Price: []Query{
		{CSS: `[data-test="price"]`, First: true},
		{CSS: `.price-value`, First: true},
	},
	Area: []Query{
		{CSS: `[data-test="area"]`},
		{CSS: `.hardfact:contains("Wohnfläche")`, Next: true},
	},
	Rooms: []Query{
		{CSS: `[data-test="rooms"]`, First: true},
		{CSS: `.hardfact:contains("Zimmer")`, First: true, Next: true},
	},
}
