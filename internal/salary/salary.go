// Package salary maps (track, experience, percentile, location) to a local
// currency salary range. Base bands are annual US figures; locations scale
// them by a fixed multiplier.
package salary

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/radosukala/worthle/internal/models"
)

// ErrNoBand is returned for tracks without a base salary band. The qa track
// deliberately has none; callers must surface this instead of inventing a
// figure.
var ErrNoBand = errors.New("no salary band for track")

// Band holds the four percentile anchors of a base salary band.
type Band struct {
	P25 int
	P50 int
	P75 int
	P90 int
}

// Location pairs a multiplier relative to the US baseline with the local
// currency symbol.
type Location struct {
	Value      string  `json:"value"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"-"`
	Currency   string  `json:"currency"`
}

// DefaultLocation is the fallback for unknown location keys.
const DefaultLocation = "remote-us"

// Locations is the fixed table of supported locations, in selector order.
var Locations = []Location{
	{"san-francisco", "San Francisco", 1.15, "$"},
	{"new-york", "New York", 1.10, "$"},
	{"london", "London", 0.75, "£"},
	{"berlin", "Berlin", 0.60, "€"},
	{"amsterdam", "Amsterdam", 0.65, "€"},
	{"paris", "Paris", 0.60, "€"},
	{"prague", "Prague", 0.40, "€"},
	{"zurich", "Zurich", 0.95, "CHF "},
	{"toronto", "Toronto", 0.70, "CA$"},
	{"sydney", "Sydney", 0.72, "A$"},
	{"singapore", "Singapore", 0.65, "S$"},
	{"bangalore", "Bangalore", 0.25, "₹"},
	{"remote-us", "Remote (US)", 1.00, "$"},
	{"remote-eu", "Remote (EU)", 0.65, "€"},
}

var locationsByKey = func() map[string]Location {
	m := make(map[string]Location, len(Locations))
	for _, loc := range Locations {
		m[loc.Value] = loc
	}
	return m
}()

// baseBands holds the US-centric base salary bands by track and experience.
// The qa track has no band; ComputeRange rejects it explicitly.
var baseBands = map[models.Track]map[models.Experience]Band{
	models.TrackBackend: {
		models.ExpJunior:    {85000, 105000, 130000, 155000},
		models.ExpMid:       {120000, 145000, 175000, 210000},
		models.ExpSenior:    {150000, 185000, 225000, 270000},
		models.ExpStaff:     {175000, 215000, 260000, 310000},
		models.ExpPrincipal: {195000, 240000, 290000, 350000},
	},
	models.TrackFrontend: {
		models.ExpJunior:    {78000, 95000, 120000, 145000},
		models.ExpMid:       {110000, 135000, 165000, 195000},
		models.ExpSenior:    {140000, 170000, 210000, 250000},
		models.ExpStaff:     {160000, 200000, 245000, 290000},
		models.ExpPrincipal: {180000, 225000, 270000, 325000},
	},
	models.TrackFullstack: {
		models.ExpJunior:    {82000, 100000, 125000, 150000},
		models.ExpMid:       {115000, 140000, 170000, 200000},
		models.ExpSenior:    {145000, 178000, 218000, 260000},
		models.ExpStaff:     {168000, 208000, 252000, 300000},
		models.ExpPrincipal: {188000, 232000, 280000, 338000},
	},
	models.TrackMobile: {
		models.ExpJunior:    {80000, 98000, 122000, 148000},
		models.ExpMid:       {112000, 138000, 168000, 198000},
		models.ExpSenior:    {142000, 175000, 215000, 255000},
		models.ExpStaff:     {165000, 205000, 248000, 295000},
		models.ExpPrincipal: {185000, 228000, 275000, 330000},
	},
	models.TrackDevops: {
		models.ExpJunior:    {88000, 108000, 132000, 158000},
		models.ExpMid:       {125000, 150000, 180000, 215000},
		models.ExpSenior:    {155000, 190000, 230000, 275000},
		models.ExpStaff:     {178000, 220000, 265000, 315000},
		models.ExpPrincipal: {198000, 245000, 295000, 355000},
	},
	models.TrackData: {
		models.ExpJunior:    {82000, 102000, 128000, 155000},
		models.ExpMid:       {118000, 145000, 175000, 210000},
		models.ExpSenior:    {150000, 185000, 228000, 272000},
		models.ExpStaff:     {172000, 215000, 262000, 315000},
		models.ExpPrincipal: {192000, 240000, 292000, 350000},
	},
}

// ComputeRange interpolates a point estimate from the percentile against the
// band anchors, applies the location multiplier, and returns a ±12% band with
// both bounds rounded to the nearest 1000 local currency units. Unknown
// locations behave as remote-us; tracks or experience brackets without a
// band are rejected with ErrNoBand.
func ComputeRange(track models.Track, experience models.Experience, percentile int, location string) (models.SalaryRange, error) {
	bands, ok := baseBands[track]
	if !ok {
		return models.SalaryRange{}, fmt.Errorf("%w: %s", ErrNoBand, track)
	}
	band, ok := bands[experience]
	if !ok {
		return models.SalaryRange{}, fmt.Errorf("%w: %s/%s", ErrNoBand, track, experience)
	}

	loc, ok := locationsByKey[location]
	if !ok {
		loc = locationsByKey[DefaultLocation]
	}

	point := interpolate(band, percentile) * loc.Multiplier

	return models.SalaryRange{
		Location: location,
		Min:      roundToThousand(point * 0.88),
		Max:      roundToThousand(point * 1.12),
		Currency: loc.Currency,
	}, nil
}

// interpolate maps a percentile to a dollar point estimate, piecewise-linear
// between the p25/p50/p75/p90 anchors and flat below 25.
func interpolate(band Band, percentile int) float64 {
	p := float64(percentile)
	switch {
	case percentile <= 25:
		return float64(band.P25)
	case percentile <= 50:
		t := (p - 25) / 25
		return float64(band.P25) + t*float64(band.P50-band.P25)
	case percentile <= 75:
		t := (p - 50) / 25
		return float64(band.P50) + t*float64(band.P75-band.P50)
	default:
		t := (p - 75) / 25
		return float64(band.P75) + t*float64(band.P90-band.P75)
	}
}

func roundToThousand(v float64) int {
	return int(math.Round(v/1000)) * 1000
}

// Format renders an amount for display. Rupee amounts of a lakh or more are
// rendered in lakhs with one decimal (₹12.3L); everything else gets thousands
// separators after the currency symbol.
func Format(amount int, currency string) string {
	if currency == "₹" && amount >= 100000 {
		return fmt.Sprintf("₹%.1fL", float64(amount)/100000)
	}
	return currency + groupThousands(amount)
}

func groupThousands(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
