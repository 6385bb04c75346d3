package models

import (
	"time"

	"github.com/google/uuid"
)

// RoutePrice is a driver's quoted price for one directed route. Lookups fall
// back to the reversed key, so a single row covers both directions unless the
// driver configures them separately.
type RoutePrice struct {
	DriverID     uuid.UUID `json:"driver_id" db:"driver_id"`
	RouteKey     string    `json:"route_key" db:"route_key"`
	FromLocation string    `json:"from_location" db:"from_location"`
	ToLocation   string    `json:"to_location" db:"to_location"`
	Price        int       `json:"price" db:"price"`
	DistanceKm   float64   `json:"distance_km" db:"distance_km"`
	DurationMin  int       `json:"duration_min" db:"duration_min"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PeakHourSlot multiplies the fare during [StartHour, EndHour). Multiple
// enabled slots covering the same hour compound.
type PeakHourSlot struct {
	Enabled    bool    `json:"enabled"`
	StartHour  int     `json:"start_hour"`
	EndHour    int     `json:"end_hour"`
	Multiplier float64 `json:"multiplier"`
}

// NightWindow multiplies the fare inside an hour window that may wrap past
// midnight (e.g. 22 to 5).
type NightWindow struct {
	Enabled    bool    `json:"enabled"`
	StartHour  int     `json:"start_hour"`
	EndHour    int     `json:"end_hour"`
	Multiplier float64 `json:"multiplier"`
}

// HolidayModifier applies whenever enabled; the engine has no holiday
// calendar, the driver toggles it.
type HolidayModifier struct {
	Enabled    bool    `json:"enabled"`
	Multiplier float64 `json:"multiplier"`
}

// ZoneSurcharge adds a flat amount and/or a percentage of the running fare.
type ZoneSurcharge struct {
	Zone    string  `json:"zone"`
	Flat    int     `json:"flat"`
	Percent float64 `json:"percent"`
}

// PricingModifiers is a driver's full time/zone adjustment configuration.
type PricingModifiers struct {
	DriverID     uuid.UUID       `json:"driver_id"`
	Night        NightWindow     `json:"night"`
	Holiday      HolidayModifier `json:"holiday"`
	PeakSlots    []PeakHourSlot  `json:"peak_slots"`
	SpecialZones []ZoneSurcharge `json:"special_zones"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PricingProfile is everything fare computation needs for one driver.
type PricingProfile struct {
	DriverID  uuid.UUID             `json:"driver_id"`
	Routes    map[string]RoutePrice `json:"routes"`
	Modifiers PricingModifiers      `json:"modifiers"`
}
