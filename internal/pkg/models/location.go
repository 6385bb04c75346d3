package models

import "time"

// Location is a live driver position. Geohash is stored alongside the raw
// coordinates so proximity checks can pre-filter without trigonometry.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
