package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/pricing"
)

func profileWithRoute(from, to string, price int) *models.PricingProfile {
	key, _ := RouteKey(from, to)
	return &models.PricingProfile{
		Routes: map[string]models.RoutePrice{
			key: {RouteKey: key, FromLocation: from, ToLocation: to, Price: price},
		},
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 8, 30, hour, 30, 0, 0, time.UTC)
}

func TestRouteKey(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		want    string
		wantErr error
	}{
		{name: "simple", from: "Machakos", to: "Masii", want: "machakos-masii"},
		{name: "whitespace collapsed", from: "  Machakos   Town ", to: "Masii", want: "machakos town-masii"},
		{name: "empty from", from: "", to: "Masii", wantErr: pricing.ErrInvalidLocation},
		{name: "unsafe characters", from: "mach#kos", to: "Masii", wantErr: pricing.ErrInvalidLocation},
		{name: "dots rejected", from: "ma.sii", to: "Machakos", wantErr: pricing.ErrInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := RouteKey(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestLookupRoutePrice_ReverseFallback(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1500)

	rp, ok := LookupRoutePrice(profile, "Machakos", "Masii")
	assert.True(t, ok)
	assert.Equal(t, 1500, rp.Price)

	// Reversed direction resolves through the same row.
	rp, ok = LookupRoutePrice(profile, "Masii", "Machakos")
	assert.True(t, ok)
	assert.Equal(t, 1500, rp.Price)

	_, ok = LookupRoutePrice(profile, "Masii", "Tala")
	assert.False(t, ok)
}

func TestComputeFare_BaseAndUnpriced(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1500)

	assert.Equal(t, 1500, ComputeFare(profile, "Machakos", "Masii", at(10)))
	assert.Equal(t, 1500, ComputeFare(profile, "Masii", "Machakos", at(10)))
	assert.Equal(t, 0, ComputeFare(profile, "Masii", "Tala", at(10)))
}

func TestComputeFare_NightWindowWrapsMidnight(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1000)
	profile.Modifiers.Night = models.NightWindow{
		Enabled: true, StartHour: 22, EndHour: 5, Multiplier: 1.5,
	}

	assert.Equal(t, 1500, ComputeFare(profile, "Machakos", "Masii", at(23)))
	assert.Equal(t, 1500, ComputeFare(profile, "Machakos", "Masii", at(2)))
	assert.Equal(t, 1500, ComputeFare(profile, "Machakos", "Masii", at(5)))
	assert.Equal(t, 1000, ComputeFare(profile, "Machakos", "Masii", at(6)))
	assert.Equal(t, 1000, ComputeFare(profile, "Machakos", "Masii", at(21)))
}

func TestComputeFare_PeakSlotsCompound(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1000)
	profile.Modifiers.PeakSlots = []models.PeakHourSlot{
		{Enabled: true, StartHour: 7, EndHour: 9, Multiplier: 1.2},
		{Enabled: true, StartHour: 8, EndHour: 10, Multiplier: 1.1},
		{Enabled: false, StartHour: 8, EndHour: 10, Multiplier: 3},
	}

	// Hour 8 sits in both enabled slots: 1000 * 1.2 * 1.1 = 1320.
	assert.Equal(t, 1320, ComputeFare(profile, "Machakos", "Masii", at(8)))
	// Hour 7 only hits the first slot.
	assert.Equal(t, 1200, ComputeFare(profile, "Machakos", "Masii", at(7)))
	// End hour is exclusive.
	assert.Equal(t, 1100, ComputeFare(profile, "Machakos", "Masii", at(9)))
	assert.Equal(t, 1000, ComputeFare(profile, "Machakos", "Masii", at(10)))
}

func TestComputeFare_ZoneSurchargeOrder(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1000)
	profile.Modifiers.SpecialZones = []models.ZoneSurcharge{
		{Zone: "cbd", Percent: 10, Flat: 50},
	}
	profile.Modifiers.Night = models.NightWindow{
		Enabled: true, StartHour: 22, EndHour: 5, Multiplier: 1.5,
	}

	// Percent on the running fare, then flat, then night:
	// (1000 * 1.10 + 50) * 1.5 = 1725.
	assert.Equal(t, 1725, ComputeFare(profile, "Machakos", "Masii", at(23)))
	// Daytime: just the surcharge.
	assert.Equal(t, 1150, ComputeFare(profile, "Machakos", "Masii", at(12)))
}

func TestComputeFare_HolidayAppliesRegardlessOfHour(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 1000)
	profile.Modifiers.Holiday = models.HolidayModifier{Enabled: true, Multiplier: 2}

	assert.Equal(t, 2000, ComputeFare(profile, "Machakos", "Masii", at(3)))
	assert.Equal(t, 2000, ComputeFare(profile, "Machakos", "Masii", at(14)))
}

func TestComputeFare_RoundsToWholeShillings(t *testing.T) {
	profile := profileWithRoute("Machakos", "Masii", 333)
	profile.Modifiers.Holiday = models.HolidayModifier{Enabled: true, Multiplier: 1.15}

	// 333 * 1.15 = 382.95 -> 383.
	assert.Equal(t, 383, ComputeFare(profile, "Machakos", "Masii", at(12)))
}

func TestHourInWindow(t *testing.T) {
	// Plain window.
	assert.True(t, hourInWindow(10, 9, 17))
	assert.True(t, hourInWindow(9, 9, 17))
	assert.True(t, hourInWindow(17, 9, 17))
	assert.False(t, hourInWindow(8, 9, 17))

	// Midnight wrap.
	assert.True(t, hourInWindow(23, 22, 5))
	assert.True(t, hourInWindow(0, 22, 5))
	assert.True(t, hourInWindow(5, 22, 5))
	assert.False(t, hourInWindow(12, 22, 5))
}
