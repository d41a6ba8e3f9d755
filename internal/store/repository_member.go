package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitledger/internal/logger"
	"fitledger/models"
)

type memberRepository struct {
	*DB
	logger *logger.Logger
}

// NewMemberRepository constructs the members CRUD repository. Every mutating
// method resets the row to Pending and refreshes updated_at; this is the
// only coupling between domain CRUD and the sync engine.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	return &memberRepository{DB: db, logger: logger}
}

func (r *memberRepository) Create(ctx context.Context, m models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.State = models.SyncStatePending

	res, err := r.DB.ExecContext(ctx, insertMember, m.Name, m.Phone, m.Email, m.Notes, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "memberRepository.Create").
			Str("name", m.Name).
			Msg("failed to insert member")
		return models.Member{}, fmt.Errorf("create member: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Member{}, fmt.Errorf("create member id: %w", err)
	}
	m.ID = id

	return m, nil
}

func (r *memberRepository) Update(ctx context.Context, m models.Member) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, updateMember, m.Name, m.Phone, m.Email, m.Notes, time.Now().UTC(), m.ID)
	if err != nil {
		log.Err(err).
			Str("func", "memberRepository.Update").
			Int64("id", m.ID).
			Msg("failed to update member")
		return fmt.Errorf("update member (id=%d): %w", m.ID, err)
	}

	return requireAffected(res, m.ID)
}

func (r *memberRepository) SoftDelete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	res, err := r.DB.ExecContext(ctx, softDeleteMember, now, now, id)
	if err != nil {
		log.Err(err).
			Str("func", "memberRepository.SoftDelete").
			Int64("id", id).
			Msg("failed to soft delete member")
		return fmt.Errorf("soft delete member (id=%d): %w", id, err)
	}

	return requireAffected(res, id)
}

func (r *memberRepository) Get(ctx context.Context, id int64) (models.Member, error) {
	var m models.Member
	err := r.DB.QueryRowContext(ctx, getMember, id).Scan(
		&m.ID, &m.Name, &m.Phone, &m.Email, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt, &m.State, &m.DeletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, ErrNotFound
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("get member (id=%d): %w", id, err)
	}

	return m, nil
}

func (r *memberRepository) List(ctx context.Context) ([]models.Member, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listMembers)
	if err != nil {
		log.Err(err).
			Str("func", "memberRepository.List").
			Msg("failed to query members")
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err = rows.Scan(
			&m.ID, &m.Name, &m.Phone, &m.Email, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt, &m.State, &m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return members, nil
}

func requireAffected(res sql.Result, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected (id=%d): %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
