package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var negotiationCols = []string{
	"id", "booking_id", "driver_id", "customer_id", "initial_price",
	"proposed_price", "current_offer", "status", "last_sender", "created_at",
	"expires_at", "resolved_at",
}

func lockedNegotiationRows(id uuid.UUID, status models.NegotiationStatus, lastSender models.Party, currentOffer int, expiresAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(negotiationCols).AddRow(
		id, uuid.New(), uuid.New(), "cust-1", 3000,
		2500, currentOffer, string(status), string(lastSender), time.Now().Add(-time.Minute),
		expiresAt, nil,
	)
}

func counterMsg(id uuid.UUID, sender models.Party, price int) models.NegotiationMessage {
	return models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        sender,
		Type:          models.MessageTypeCounter,
		Price:         price,
		CreatedAt:     time.Now(),
	}
}

func TestAppendCounter_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()
	msg := counterMsg(id, models.PartyDriver, 2800)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM negotiations WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE negotiations")).
		WithArgs(2800, models.NegotiationStatusCounterOffered, models.PartyDriver, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO negotiation_messages")).
		WithArgs(msg.ID, id, msg.Sender, msg.Type, msg.Price, msg.Message, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, n, err := repo.AppendCounter(context.Background(), id, msg)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
	assert.Equal(t, 2800, n.CurrentOffer)
	assert.Equal(t, models.NegotiationStatusCounterOffered, n.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendCounter_NotYourTurn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()

	// Customer made the last offer; they cannot counter their own offer.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectRollback()

	outcome, _, err := repo.AppendCounter(context.Background(), id, counterMsg(id, models.PartyCustomer, 2700))
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationNotYourTurn, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendCounter_LapsedFlipsToExpired(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(-time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE negotiations SET status = $1, resolved_at = $2")).
		WithArgs(models.NegotiationStatusExpired, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, _, err := repo.AppendCounter(context.Background(), id, counterMsg(id, models.PartyDriver, 2800))
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationExpired, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_AcceptByCounterparty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()
	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        models.PartyDriver,
		Type:          models.MessageTypeAccept,
		CreatedAt:     time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE negotiations")).
		WithArgs(models.NegotiationStatusAccepted, msg.Sender, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO negotiation_messages")).
		WithArgs(msg.ID, id, msg.Sender, msg.Type, msg.Price, msg.Message, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, n, err := repo.Resolve(context.Background(), id, models.NegotiationStatusAccepted, msg)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
	assert.Equal(t, models.NegotiationStatusAccepted, n.Status)
	assert.NotNil(t, n.ResolvedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_AcceptOwnOfferRejected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()
	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        models.PartyCustomer,
		Type:          models.MessageTypeAccept,
		CreatedAt:     time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectRollback()

	outcome, _, err := repo.Resolve(context.Background(), id, models.NegotiationStatusAccepted, msg)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationNotYourTurn, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_DeclineIgnoresTurn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()
	msg := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: id,
		Sender:        models.PartyCustomer,
		Type:          models.MessageTypeDecline,
		Message:       "too low",
		CreatedAt:     time.Now(),
	}

	// Customer sent the last message but may still decline.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE negotiations")).
		WithArgs(models.NegotiationStatusDeclined, msg.Sender, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO negotiation_messages")).
		WithArgs(msg.ID, id, msg.Sender, msg.Type, msg.Price, msg.Message, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, _, err := repo.Resolve(context.Background(), id, models.NegotiationStatusDeclined, msg)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_AlreadyResolved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusDeclined,
			models.PartyDriver, 2500, time.Now().Add(-time.Hour)))
	mock.ExpectRollback()

	outcome, _, err := repo.Resolve(context.Background(), id, models.NegotiationStatusAccepted, models.NegotiationMessage{
		Sender: models.PartyCustomer,
		Type:   models.MessageTypeAccept,
	})
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationAlreadyResolved, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireNegotiation_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()

	// First call flips the lapsed negotiation.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(-time.Minute)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE negotiations SET status = $1")).
		WithArgs(models.NegotiationStatusExpired, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	outcome, n, err := repo.ExpireNegotiation(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationExpired, outcome)
	assert.Equal(t, models.NegotiationStatusExpired, n.Status)

	// Second call observes the terminal row and changes nothing.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusExpired,
			models.PartyCustomer, 2500, time.Now().Add(-time.Minute)))
	mock.ExpectRollback()

	outcome, _, err = repo.ExpireNegotiation(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationAlreadyResolved, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireNegotiation_StillLive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(lockedNegotiationRows(id, models.NegotiationStatusPending,
			models.PartyCustomer, 2500, time.Now().Add(10*time.Minute)))
	mock.ExpectRollback()

	outcome, _, err := repo.ExpireNegotiation(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, negotiation.NegotiationOK, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNegotiation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewNegotiationRepository(&models.Config{}, db)

	now := time.Now()
	n := &models.Negotiation{
		ID:            uuid.New(),
		BookingID:     uuid.New(),
		DriverID:      uuid.New(),
		CustomerID:    "cust-1",
		InitialPrice:  3000,
		ProposedPrice: 2500,
		CurrentOffer:  2500,
		Status:        models.NegotiationStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(15 * time.Minute),
	}
	opening := models.NegotiationMessage{
		ID:            uuid.New(),
		NegotiationID: n.ID,
		Sender:        models.PartyCustomer,
		Type:          models.MessageTypeOffer,
		Price:         2500,
		CreatedAt:     now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO negotiations")).
		WithArgs(n.ID, n.BookingID, n.DriverID, n.CustomerID, n.InitialPrice,
			n.ProposedPrice, n.CurrentOffer, n.Status, opening.Sender, n.CreatedAt, n.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO negotiation_messages")).
		WithArgs(opening.ID, n.ID, opening.Sender, opening.Type, opening.Price,
			opening.Message, opening.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateNegotiation(context.Background(), n, opening)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
