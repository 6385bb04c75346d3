// Package locations resolves minor locations to the transport hub that
// serves them, so matching can fall back to hub routes when no driver prices
// the exact leg.
package locations

import "strings"

// hubByLocation maps normalized minor-location names to their hub. Seed data
// covers the Machakos corridor the service launched in; unknown locations
// simply have no hub.
var hubByLocation = map[string]string{
	// Machakos Town feeder villages
	"masii":     "Machakos Town",
	"mwala":     "Machakos Town",
	"wamunyu":   "Machakos Town",
	"kathiani":  "Machakos Town",
	"mutituni":  "Machakos Town",
	"kaloleni":  "Machakos Town",
	"mumbuni":   "Machakos Town",
	"katelembu": "Machakos Town",

	// Kangundo side
	"tala":     "Kangundo",
	"kakuyuni": "Kangundo",
	"kivaani":  "Kangundo",

	// Athi River / Mombasa road corridor
	"mlolongo": "Athi River",
	"syokimau": "Athi River",
	"katani":   "Athi River",

	// Konza side
	"kalama":  "Konza",
	"kiitini": "Konza",
}

// Normalize lower-cases, trims, and collapses internal whitespace so lookups
// tolerate user-entered location names.
func Normalize(location string) string {
	return strings.Join(strings.Fields(strings.ToLower(location)), " ")
}

// NearbyHub returns the hub serving the given minor location, if any.
func NearbyHub(location string) (string, bool) {
	hub, ok := hubByLocation[Normalize(location)]
	return hub, ok
}

// IsHub reports whether the location is itself a hub.
func IsHub(location string) bool {
	n := Normalize(location)
	for _, hub := range hubByLocation {
		if Normalize(hub) == n {
			return true
		}
	}
	return false
}
