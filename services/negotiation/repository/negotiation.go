package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sieless/Taxi-Tao-sub000/internal/pkg/models"
	"github.com/sieless/Taxi-Tao-sub000/services/negotiation"
)

const negotiationColumns = `
	id, booking_id, driver_id, customer_id, initial_price, proposed_price,
	current_offer, status, last_sender, created_at, expires_at, resolved_at`

// NegotiationRepo implements the negotiation repository interface
type NegotiationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

// NewNegotiationRepository creates a new negotiation repository
func NewNegotiationRepository(cfg *models.Config, db *sqlx.DB) *NegotiationRepo {
	return &NegotiationRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

// CreateNegotiation inserts the negotiation and its opening offer together.
func (r *NegotiationRepo) CreateNegotiation(ctx context.Context, n *models.Negotiation, opening models.NegotiationMessage) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `
		INSERT INTO negotiations (
			id, booking_id, driver_id, customer_id, initial_price, proposed_price,
			current_offer, status, last_sender, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err = tx.ExecContext(ctx, query,
		n.ID, n.BookingID, n.DriverID, n.CustomerID, n.InitialPrice, n.ProposedPrice,
		n.CurrentOffer, n.Status, opening.Sender, n.CreatedAt, n.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create negotiation: %w", err)
	}

	if err = r.insertMessage(ctx, tx, opening); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit negotiation: %w", err)
	}
	return nil
}

// GetNegotiation loads one negotiation with its message log.
func (r *NegotiationRepo) GetNegotiation(ctx context.Context, id uuid.UUID) (*models.Negotiation, error) {
	query := `SELECT` + negotiationColumns + ` FROM negotiations WHERE id = $1`

	var dto negotiationDTO
	err := r.db.QueryRowxContext(ctx, query, id).StructScan(&dto)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get negotiation: %w", err)
	}

	n := dto.toNegotiation()
	if n.Messages, err = r.listMessages(ctx, id); err != nil {
		return nil, err
	}
	return n, nil
}

// ListPendingByDriver returns a driver's live negotiations, oldest first.
func (r *NegotiationRepo) ListPendingByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Negotiation, error) {
	query := `SELECT` + negotiationColumns + `
		FROM negotiations
		WHERE driver_id = $1 AND status IN ($2, $3) AND expires_at > $4
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryxContext(ctx, query, driverID,
		models.NegotiationStatusPending, models.NegotiationStatusCounterOffered, r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list negotiations: %w", err)
	}
	defer rows.Close()

	var negotiations []*models.Negotiation
	for rows.Next() {
		var dto negotiationDTO
		if err := rows.StructScan(&dto); err != nil {
			return nil, fmt.Errorf("failed to scan negotiation: %w", err)
		}
		negotiations = append(negotiations, dto.toNegotiation())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read negotiations: %w", err)
	}

	for _, n := range negotiations {
		if n.Messages, err = r.listMessages(ctx, n.ID); err != nil {
			return nil, err
		}
	}
	return negotiations, nil
}

func (r *NegotiationRepo) listMessages(ctx context.Context, negotiationID uuid.UUID) ([]models.NegotiationMessage, error) {
	query := `
		SELECT id, negotiation_id, sender, type, price, message, created_at
		FROM negotiation_messages
		WHERE negotiation_id = $1
		ORDER BY created_at ASC
	`
	var messages []models.NegotiationMessage
	if err := r.db.SelectContext(ctx, &messages, query, negotiationID); err != nil {
		return nil, fmt.Errorf("failed to list negotiation messages: %w", err)
	}
	return messages, nil
}

func (r *NegotiationRepo) insertMessage(ctx context.Context, tx *sqlx.Tx, msg models.NegotiationMessage) error {
	query := `
		INSERT INTO negotiation_messages (
			id, negotiation_id, sender, type, price, message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, query,
		msg.ID, msg.NegotiationID, msg.Sender, msg.Type, msg.Price, msg.Message,
		msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to append negotiation message: %w", err)
	}
	return nil
}

// lockNegotiation loads a negotiation inside tx with a row lock.
func (r *NegotiationRepo) lockNegotiation(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*negotiationDTO, error) {
	query := `SELECT` + negotiationColumns + ` FROM negotiations WHERE id = $1 FOR UPDATE`

	var dto negotiationDTO
	err := tx.QueryRowxContext(ctx, query, id).StructScan(&dto)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock negotiation: %w", err)
	}
	return &dto, nil
}

// expireLocked flips a lapsed live negotiation and commits.
func (r *NegotiationRepo) expireLocked(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, now time.Time) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE negotiations SET status = $1, resolved_at = $2 WHERE id = $3`,
		models.NegotiationStatusExpired, now, id); err != nil {
		return fmt.Errorf("failed to expire negotiation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expiry: %w", err)
	}
	return nil
}

// AppendCounter records a counter offer. The row lock serializes concurrent
// messages so strict turn alternation holds.
func (r *NegotiationRepo) AppendCounter(ctx context.Context, id uuid.UUID, msg models.NegotiationMessage) (negotiation.NegotiationOutcome, *models.Negotiation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockNegotiation(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return negotiation.NegotiationNotFound, nil, nil
	}
	if dto.isTerminal() {
		tx.Rollback()
		return negotiation.NegotiationAlreadyResolved, nil, nil
	}

	now := r.now()
	if !now.Before(dto.ExpiresAt) {
		if err = r.expireLocked(ctx, tx, id, now); err != nil {
			return "", nil, err
		}
		return negotiation.NegotiationExpired, nil, nil
	}
	if dto.LastSender == string(msg.Sender) {
		tx.Rollback()
		return negotiation.NegotiationNotYourTurn, nil, nil
	}

	updateQuery := `
		UPDATE negotiations
		SET current_offer = $1, status = $2, last_sender = $3
		WHERE id = $4
	`
	if _, err = tx.ExecContext(ctx, updateQuery,
		msg.Price, models.NegotiationStatusCounterOffered, msg.Sender, id); err != nil {
		return "", nil, fmt.Errorf("failed to record counter offer: %w", err)
	}

	if err = r.insertMessage(ctx, tx, msg); err != nil {
		return "", nil, err
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit counter offer: %w", err)
	}

	n := dto.toNegotiation()
	n.CurrentOffer = msg.Price
	n.Status = models.NegotiationStatusCounterOffered
	n.Messages = []models.NegotiationMessage{msg}
	return negotiation.NegotiationOK, n, nil
}

// Resolve moves a live negotiation to accepted or declined. Accepting is a
// turn-bound move; either side may decline at any point.
func (r *NegotiationRepo) Resolve(ctx context.Context, id uuid.UUID, status models.NegotiationStatus, msg models.NegotiationMessage) (negotiation.NegotiationOutcome, *models.Negotiation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockNegotiation(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return negotiation.NegotiationNotFound, nil, nil
	}
	if dto.isTerminal() {
		tx.Rollback()
		return negotiation.NegotiationAlreadyResolved, nil, nil
	}

	now := r.now()
	if !now.Before(dto.ExpiresAt) {
		if err = r.expireLocked(ctx, tx, id, now); err != nil {
			return "", nil, err
		}
		return negotiation.NegotiationExpired, nil, nil
	}
	if msg.Type == models.MessageTypeAccept && dto.LastSender == string(msg.Sender) {
		tx.Rollback()
		return negotiation.NegotiationNotYourTurn, nil, nil
	}

	updateQuery := `
		UPDATE negotiations
		SET status = $1, last_sender = $2, resolved_at = $3
		WHERE id = $4
	`
	if _, err = tx.ExecContext(ctx, updateQuery,
		status, msg.Sender, now, id); err != nil {
		return "", nil, fmt.Errorf("failed to resolve negotiation: %w", err)
	}

	if err = r.insertMessage(ctx, tx, msg); err != nil {
		return "", nil, err
	}

	if err = tx.Commit(); err != nil {
		return "", nil, fmt.Errorf("failed to commit resolution: %w", err)
	}

	n := dto.toNegotiation()
	n.Status = status
	n.ResolvedAt = &now
	n.Messages = []models.NegotiationMessage{msg}
	return negotiation.NegotiationOK, n, nil
}

// ExpireNegotiation flips a live negotiation past its deadline. Safe to call
// repeatedly: a previously expired negotiation reads as already_resolved.
func (r *NegotiationRepo) ExpireNegotiation(ctx context.Context, id uuid.UUID) (negotiation.NegotiationOutcome, *models.Negotiation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	dto, err := r.lockNegotiation(ctx, tx, id)
	if err != nil {
		return "", nil, err
	}
	if dto == nil {
		tx.Rollback()
		return negotiation.NegotiationNotFound, nil, nil
	}
	if dto.isTerminal() {
		tx.Rollback()
		return negotiation.NegotiationAlreadyResolved, nil, nil
	}

	now := r.now()
	if now.Before(dto.ExpiresAt) {
		// Still live, nothing to flip.
		tx.Rollback()
		return negotiation.NegotiationOK, dto.toNegotiation(), nil
	}

	if err = r.expireLocked(ctx, tx, id, now); err != nil {
		return "", nil, err
	}

	n := dto.toNegotiation()
	n.Status = models.NegotiationStatusExpired
	n.ResolvedAt = &now
	return negotiation.NegotiationExpired, n, nil
}
