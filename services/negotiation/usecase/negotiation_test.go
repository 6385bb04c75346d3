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
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation/mocks"
)

func newTestUC(t *testing.T) (*NegotiationUC, *mocks.MockNegotiationRepo, *mocks.MockNegotiationGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockNegotiationRepo(ctrl)
	mockGW := mocks.NewMockNegotiationGW(ctrl)

	cfg := &models.Config{
		Negotiation: models.NegotiationConfig{ExpiryMinutes: 15},
	}
	uc := NewNegotiationUC(cfg, mockRepo, mockGW)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return uc, mockRepo, mockGW
}

func TestOpenNegotiation_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	bookingID := uuid.New()
	driverID := uuid.New()

	var stored *models.Negotiation
	mockRepo.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Negotiation, opening models.NegotiationMessage) error {
			stored = n
			assert.Equal(t, models.PartyCustomer, opening.Sender)
			assert.Equal(t, models.MessageTypeOffer, opening.Type)
			assert.Equal(t, 2500, opening.Price)
			return nil
		})
	mockGW.EXPECT().PublishNegotiationOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.NegotiationEvent) error {
			assert.Equal(t, models.PartyDriver, event.Recipient)
			assert.Equal(t, 2500, event.Price)
			return nil
		})

	n, err := uc.OpenNegotiation(context.Background(), bookingID, driverID, "cust-1", 3000, 2500, "any chance?")

	assert.NoError(t, err)
	assert.Equal(t, stored, n)
	assert.Equal(t, models.NegotiationStatusPending, n.Status)
	assert.Equal(t, 2500, n.CurrentOffer)
	assert.Equal(t, uc.now().Add(15*time.Minute), n.ExpiresAt)
	assert.Len(t, n.Messages, 1)
}

func TestOpenNegotiation_RejectsBadPrices(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.OpenNegotiation(context.Background(), uuid.New(), uuid.New(), "cust-1", 3000, 0, "")
	assert.Error(t, err)

	_, err = uc.OpenNegotiation(context.Background(), uuid.New(), uuid.New(), "cust-1", -1, 2500, "")
	assert.Error(t, err)
}

func TestOpenNegotiation_PublishFailureIsSwallowed(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().CreateNegotiation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishNegotiationOffer(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	n, err := uc.OpenNegotiation(context.Background(), uuid.New(), uuid.New(), "cust-1", 3000, 2500, "")

	assert.NoError(t, err)
	assert.NotNil(t, n)
}

func TestCounterOffer_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	snapshot := &models.Negotiation{
		ID:           id,
		BookingID:    uuid.New(),
		DriverID:     uuid.New(),
		CurrentOffer: 2800,
		Status:       models.NegotiationStatusCounterOffered,
	}

	mockRepo.EXPECT().AppendCounter(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, msg models.NegotiationMessage) (negotiation.NegotiationOutcome, *models.Negotiation, error) {
			assert.Equal(t, models.PartyDriver, msg.Sender)
			assert.Equal(t, models.MessageTypeCounter, msg.Type)
			assert.Equal(t, 2800, msg.Price)
			return negotiation.NegotiationOK, snapshot, nil
		})
	mockGW.EXPECT().PublishNegotiationOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.NegotiationEvent) error {
			assert.Equal(t, models.PartyCustomer, event.Recipient)
			assert.Equal(t, 2800, event.Price)
			return nil
		})

	outcome, err := uc.CounterOffer(context.Background(), id, models.PartyDriver, 2800, "best I can do")

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
}

func TestCounterOffer_InvalidPriceShortCircuits(t *testing.T) {
	uc, _, _ := newTestUC(t)

	outcome, err := uc.CounterOffer(context.Background(), uuid.New(), models.PartyDriver, 0, "")

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationInvalidPrice, outcome)
}

func TestCounterOffer_NotYourTurnSkipsPublish(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().AppendCounter(gomock.Any(), id, gomock.Any()).
		Return(negotiation.NegotiationNotYourTurn, nil, nil)

	outcome, err := uc.CounterOffer(context.Background(), id, models.PartyCustomer, 2600, "")

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationNotYourTurn, outcome)
}

func TestAcceptOffer_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	snapshot := &models.Negotiation{
		ID:           id,
		BookingID:    uuid.New(),
		DriverID:     uuid.New(),
		CurrentOffer: 2700,
		Status:       models.NegotiationStatusAccepted,
	}

	mockRepo.EXPECT().Resolve(gomock.Any(), id, models.NegotiationStatusAccepted, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.NegotiationStatus, msg models.NegotiationMessage) (negotiation.NegotiationOutcome, *models.Negotiation, error) {
			assert.Equal(t, models.MessageTypeAccept, msg.Type)
			assert.Equal(t, models.PartyDriver, msg.Sender)
			return negotiation.NegotiationOK, snapshot, nil
		})
	mockGW.EXPECT().PublishNegotiationAccepted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.NegotiationEvent) error {
			assert.Equal(t, models.PartyCustomer, event.Recipient)
			assert.Equal(t, 2700, event.Price)
			return nil
		})

	outcome, err := uc.AcceptOffer(context.Background(), id, models.PartyDriver)

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
}

func TestAcceptOffer_ExpiredSkipsPublish(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Resolve(gomock.Any(), id, models.NegotiationStatusAccepted, gomock.Any()).
		Return(negotiation.NegotiationExpired, nil, nil)

	outcome, err := uc.AcceptOffer(context.Background(), id, models.PartyCustomer)

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationExpired, outcome)
}

func TestDeclineOffer_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	id := uuid.New()
	snapshot := &models.Negotiation{
		ID:        id,
		BookingID: uuid.New(),
		DriverID:  uuid.New(),
		Status:    models.NegotiationStatusDeclined,
	}

	mockRepo.EXPECT().Resolve(gomock.Any(), id, models.NegotiationStatusDeclined, gomock.Any()).
		Return(negotiation.NegotiationOK, snapshot, nil)
	mockGW.EXPECT().PublishNegotiationDeclined(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.NegotiationEvent) error {
			assert.Equal(t, models.PartyDriver, event.Recipient)
			assert.Equal(t, "found another ride", event.Message)
			return nil
		})

	outcome, err := uc.DeclineOffer(context.Background(), id, models.PartyCustomer, "found another ride")

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
}

func TestCheckExpiration(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().ExpireNegotiation(gomock.Any(), id).
		Return(negotiation.NegotiationExpired, &models.Negotiation{ID: id}, nil)

	outcome, err := uc.CheckExpiration(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationExpired, outcome)
}

func TestCheckExpiration_RepoError(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().ExpireNegotiation(gomock.Any(), id).
		Return(negotiation.NegotiationOutcome(""), nil, errors.New("db down"))

	_, err := uc.CheckExpiration(context.Background(), id)

	assert.Error(t, err)
}
