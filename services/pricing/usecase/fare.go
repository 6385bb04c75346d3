package usecase

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/locations"
	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

// RouteKey builds the canonical "from-to" key for a route. Location names are
// lower-cased, trimmed and whitespace-collapsed; names containing key-unsafe
// characters are rejected.
func RouteKey(from, to string) (string, error) {
	f := locations.Normalize(from)
	t := locations.Normalize(to)
	if f == "" || t == "" {
		return "", pricing.ErrInvalidLocation
	}
	if !validKeyPart(f) || !validKeyPart(t) {
		return "", pricing.ErrInvalidLocation
	}
	return f + "-" + t, nil
}

func validKeyPart(s string) bool {
	if strings.ContainsAny(s, "./$#[]") {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// LookupRoutePrice resolves the base price for a route from a driver's
// profile: exact key first, then the reversed key (prices are treated as
// symmetric unless both directions are configured). Returns ok=false when
// the driver does not serve the route.
func LookupRoutePrice(profile *models.PricingProfile, from, to string) (models.RoutePrice, bool) {
	key, err := RouteKey(from, to)
	if err != nil {
		return models.RoutePrice{}, false
	}
	if rp, ok := profile.Routes[key]; ok {
		return rp, true
	}
	reverseKey, err := RouteKey(to, from)
	if err != nil {
		return models.RoutePrice{}, false
	}
	rp, ok := profile.Routes[reverseKey]
	return rp, ok
}

// ComputeFare returns the adjusted fare for a route at the given time, or 0
// when the driver has no price for the route.
//
// Adjustment order: special-zone surcharges on the running fare, then the
// night multiplier, then the holiday multiplier, then every enabled peak slot
// whose [start, end) window contains the hour. The result is rounded to the
// nearest whole KES.
func ComputeFare(profile *models.PricingProfile, from, to string, at time.Time) int {
	base, ok := LookupRoutePrice(profile, from, to)
	if !ok || base.Price <= 0 {
		return 0
	}

	fare := float64(base.Price)
	hour := at.Hour()
	m := profile.Modifiers

	for _, zone := range m.SpecialZones {
		if zone.Percent > 0 {
			fare += fare * zone.Percent / 100
		}
		fare += float64(zone.Flat)
	}

	if m.Night.Enabled && m.Night.Multiplier > 0 && hourInWindow(hour, m.Night.StartHour, m.Night.EndHour) {
		fare *= m.Night.Multiplier
	}

	if m.Holiday.Enabled && m.Holiday.Multiplier > 0 {
		fare *= m.Holiday.Multiplier
	}

	for _, slot := range m.PeakSlots {
		if slot.Enabled && slot.Multiplier > 0 && hour >= slot.StartHour && hour < slot.EndHour {
			fare *= slot.Multiplier
		}
	}

	return int(math.Round(fare))
}

// hourInWindow handles windows that wrap past midnight: a 22..5 window
// matches hour>=22 or hour<=5.
func hourInWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}
