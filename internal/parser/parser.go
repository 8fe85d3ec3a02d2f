// Package parser turns raw listing text fragments into numbers.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// priceCharsRegexp matches everything that cannot be part of a price.
	priceCharsRegexp = regexp.MustCompile(`[^\d,.]`)
	// areaRegexp captures a numeral directly followed by the square-meter unit.
	areaRegexp = regexp.MustCompile(`(\d+[,.]?\d*)\s*m²`)
	// roomsRegexp captures the first numeral, e.g. "3,5" in "3,5 Zimmer".
	roomsRegexp = regexp.MustCompile(`\d+(?:[,.]\d+)?`)
)

// ExtractPrice parses a price fragment such as "350.000 €" into whole
// currency units.
//
// Commas and periods are not told apart. All separators but the last are
// dropped as grouping marks; the last one is a grouping mark when exactly
// three digits follow it and the decimal point otherwise. So "299.000,00 €"
// yields 299000 but "1.234" yields 1234, never 1.
func ExtractPrice(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	cleaned := priceCharsRegexp.ReplaceAllString(text, "")
	normalized := strings.ReplaceAll(cleaned, ",", ".")

	parts := strings.Split(normalized, ".")
	number := parts[0]
	if len(parts) > 1 {
		last := parts[len(parts)-1]
		head := strings.Join(parts[:len(parts)-1], "")
		if len(last) == 3 {
			number = head + last
		} else {
			number = head + "." + last
		}
	}
	number = strings.TrimSuffix(number, ".")

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(value)), true
}

// ExtractArea finds a living area like "85 m²" or "72,5m²" in text.
func ExtractArea(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	match := areaRegexp.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	return parseDecimal(match[1])
}

// ExtractRooms returns the first number in text, e.g. 3.5 for "3,5 Zimmer".
func ExtractRooms(text string) (float64, bool) {
	match := roomsRegexp.FindString(text)
	if match == "" {
		return 0, false
	}
	return parseDecimal(match)
}

func parseDecimal(raw string) (float64, bool) {
	raw = strings.TrimSuffix(strings.Replace(raw, ",", ".", 1), ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
