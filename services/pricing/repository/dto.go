package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
)

// modifiersDTO maps the pricing_modifiers row; the JSONB columns arrive as
// raw bytes and are unmarshalled on the way out.
type modifiersDTO struct {
	DriverID          uuid.UUID `db:"driver_id"`
	NightEnabled      bool      `db:"night_enabled"`
	NightStart        int       `db:"night_start"`
	NightEnd          int       `db:"night_end"`
	NightMultiplier   float64   `db:"night_multiplier"`
	HolidayEnabled    bool      `db:"holiday_enabled"`
	HolidayMultiplier float64   `db:"holiday_multiplier"`
	PeakSlots         []byte    `db:"peak_slots"`
	SpecialZones      []byte    `db:"special_zones"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (d *modifiersDTO) toModifiers() (models.PricingModifiers, error) {
	m := models.PricingModifiers{
		DriverID: d.DriverID,
		Night: models.NightWindow{
			Enabled:    d.NightEnabled,
			StartHour:  d.NightStart,
			EndHour:    d.NightEnd,
			Multiplier: d.NightMultiplier,
		},
		Holiday: models.HolidayModifier{
			Enabled:    d.HolidayEnabled,
			Multiplier: d.HolidayMultiplier,
		},
		UpdatedAt: d.UpdatedAt,
	}

	if len(d.PeakSlots) > 0 {
		if err := json.Unmarshal(d.PeakSlots, &m.PeakSlots); err != nil {
			return m, fmt.Errorf("failed to unmarshal peak slots: %w", err)
		}
	}
	if len(d.SpecialZones) > 0 {
		if err := json.Unmarshal(d.SpecialZones, &m.SpecialZones); err != nil {
			return m, fmt.Errorf("failed to unmarshal special zones: %w", err)
		}
	}
	return m, nil
}
