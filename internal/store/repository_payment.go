package store

import (
	"context"
	"fmt"
	"time"

	"fitledger/internal/logger"
	"fitledger/models"
)

type paymentRepository struct {
	*DB
	logger *logger.Logger
}

// NewPaymentRepository constructs the payments CRUD repository. Payments
// reference members (and optionally subscriptions); the foreign keys are
// enforced by the schema, which is why payments sync after both parents.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	return &paymentRepository{DB: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, p models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.State = models.SyncStatePending

	res, err := r.DB.ExecContext(ctx, insertPayment,
		p.MemberID, p.SubscriptionID, p.Amount, p.Method, p.PaidAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if IsConstraintViolation(err) {
			return models.Payment{}, fmt.Errorf("%w: payment member_id=%d: %w", ErrConstraintViolation, p.MemberID, err)
		}
		log.Err(err).
			Str("func", "paymentRepository.Create").
			Int64("member_id", p.MemberID).
			Msg("failed to insert payment")
		return models.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Payment{}, fmt.Errorf("create payment id: %w", err)
	}
	p.ID = id

	return p, nil
}

func (r *paymentRepository) SoftDelete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	res, err := r.DB.ExecContext(ctx, softDeletePayment, now, now, id)
	if err != nil {
		log.Err(err).
			Str("func", "paymentRepository.SoftDelete").
			Int64("id", id).
			Msg("failed to soft delete payment")
		return fmt.Errorf("soft delete payment (id=%d): %w", id, err)
	}

	return requireAffected(res, id)
}

func (r *paymentRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listPaymentsByMember, memberID)
	if err != nil {
		log.Err(err).
			Str("func", "paymentRepository.ListByMember").
			Int64("member_id", memberID).
			Msg("failed to query payments")
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err = rows.Scan(
			&p.ID, &p.MemberID, &p.SubscriptionID, &p.Amount, &p.Method, &p.PaidAt,
			&p.CreatedAt, &p.UpdatedAt, &p.State, &p.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		payments = append(payments, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return payments, nil
}
