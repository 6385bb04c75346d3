package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/booking"
	bookingmocks "github.com/sieless/Taxi-Tao-sub000/services/booking/mocks"
	"github.com/sieless/Taxi-Tao-sub000/services/location"
	"github.com/sieless/Taxi-Tao-sub000/services/location/mocks"
)

const (
	machakosLat = -1.5177
	machakosLng = 37.2634
)

func newTestUC(t *testing.T, cfg *models.Config) (*LocationUC, *mocks.MockLocationRepo, *mocks.MockLocationGW, *bookingmocks.MockBookingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockLocationGW(ctrl)
	mockBooking := bookingmocks.NewMockBookingUC(ctrl)

	if cfg == nil {
		cfg = &models.Config{}
	}
	uc := NewLocationUC(cfg, mockRepo, mockGW, mockBooking)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	}
	return uc, mockRepo, mockGW, mockBooking
}

func TestUpdateDriverLocation_StoresAndPublishes(t *testing.T) {
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, nil)

	driverID := uuid.New()

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, loc models.Location) error {
			assert.Equal(t, machakosLat, loc.Latitude)
			assert.Equal(t, machakosLng, loc.Longitude)
			assert.NotEmpty(t, loc.Geohash)
			return nil
		})
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.DriverLocationEvent) error {
			assert.Equal(t, driverID.String(), event.DriverID)
			return nil
		})
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(nil, nil)

	loc, err := uc.UpdateDriverLocation(context.Background(), driverID, machakosLat, machakosLng)

	assert.NoError(t, err)
	assert.Equal(t, uc.now(), loc.Timestamp)
}

func TestUpdateDriverLocation_RejectsBadCoordinates(t *testing.T) {
	uc, _, _, _ := newTestUC(t, nil)

	_, err := uc.UpdateDriverLocation(context.Background(), uuid.New(), 91, 37)
	assert.Error(t, err)

	_, err = uc.UpdateDriverLocation(context.Background(), uuid.New(), -1.5, 181)
	assert.Error(t, err)
}

func TestUpdateDriverLocation_MockModeOverridesCoordinates(t *testing.T) {
	cfg := &models.Config{
		Location: models.LocationConfig{
			MockMode:      true,
			MockLatitude:  machakosLat,
			MockLongitude: machakosLng,
		},
	}
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, cfg)

	driverID := uuid.New()

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, loc models.Location) error {
			assert.Equal(t, machakosLat, loc.Latitude)
			assert.Equal(t, machakosLng, loc.Longitude)
			return nil
		})
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(nil, nil)

	// Reported coordinates are ignored entirely.
	loc, err := uc.UpdateDriverLocation(context.Background(), driverID, 50.0, 8.0)

	assert.NoError(t, err)
	assert.Equal(t, machakosLat, loc.Latitude)
}

func TestUpdateDriverLocation_PublishFailureIsSwallowed(t *testing.T) {
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, nil)

	driverID := uuid.New()
	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(nil, nil)

	_, err := uc.UpdateDriverLocation(context.Background(), driverID, machakosLat, machakosLng)

	assert.NoError(t, err)
}

func TestUpdateDriverLocation_ArrivalCompletesRide(t *testing.T) {
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, nil)

	driverID := uuid.New()
	active := &models.BookingRequest{
		ID:            uuid.New(),
		Status:        models.BookingStatusAccepted,
		RideStatus:    models.RideStatusInProgress,
		DestLatitude:  machakosLat,
		DestLongitude: machakosLng,
		Fare:          1500,
	}

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(active, nil)
	mockBooking.EXPECT().CompleteRide(gomock.Any(), active.ID, driverID, 1500).
		Return(booking.CompleteCompleted, nil)

	// ~44m from the destination.
	_, err := uc.UpdateDriverLocation(context.Background(), driverID, machakosLat+0.0004, machakosLng)

	assert.NoError(t, err)
}

func TestUpdateDriverLocation_OutsideArrivalRadius(t *testing.T) {
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, nil)

	driverID := uuid.New()
	active := &models.BookingRequest{
		ID:            uuid.New(),
		Status:        models.BookingStatusAccepted,
		RideStatus:    models.RideStatusInProgress,
		DestLatitude:  machakosLat,
		DestLongitude: machakosLng,
		Fare:          1500,
	}

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(active, nil)
	// No CompleteRide expectation: ~330m out is not an arrival.

	_, err := uc.UpdateDriverLocation(context.Background(), driverID, machakosLat+0.003, machakosLng)

	assert.NoError(t, err)
}

func TestUpdateDriverLocation_BookingWithoutDestinationSkipsCheck(t *testing.T) {
	uc, mockRepo, mockGW, mockBooking := newTestUC(t, nil)

	driverID := uuid.New()
	active := &models.BookingRequest{
		ID:     uuid.New(),
		Status: models.BookingStatusAccepted,
	}

	mockRepo.EXPECT().StoreDriverLocation(gomock.Any(), driverID.String(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishDriverLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockBooking.EXPECT().GetActiveBookingByDriver(gomock.Any(), driverID).Return(active, nil)

	_, err := uc.UpdateDriverLocation(context.Background(), driverID, machakosLat, machakosLng)

	assert.NoError(t, err)
}

func TestNearbyDrivers(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, nil)

	want := []location.DriverPosition{
		{DriverID: uuid.New().String(), Latitude: machakosLat, Longitude: machakosLng, DistanceMeters: 120},
	}
	mockRepo.EXPECT().NearbyDrivers(gomock.Any(), machakosLat, machakosLng, 1000.0).Return(want, nil)

	got, err := uc.NearbyDrivers(context.Background(), machakosLat, machakosLng, 1000)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNearbyDrivers_RejectsNonPositiveRadius(t *testing.T) {
	uc, _, _, _ := newTestUC(t, nil)

	_, err := uc.NearbyDrivers(context.Background(), machakosLat, machakosLng, 0)

	assert.Error(t, err)
}

func TestRemoveDriver(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t, nil)

	driverID := uuid.New()
	mockRepo.EXPECT().RemoveDriver(gomock.Any(), driverID.String()).Return(nil)

	err := uc.RemoveDriver(context.Background(), driverID)

	assert.NoError(t, err)
}
