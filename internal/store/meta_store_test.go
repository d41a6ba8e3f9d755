package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fitledger/internal/logger"
	"fitledger/models"
)

func newTestMetaStore(t *testing.T) (*metaStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	m := &metaStore{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return m, mock, db
}

func TestGetLastSyncTime_NeverSynced(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_metadata").
		WithArgs("last_sync_time:" + models.TableMembers).
		WillReturnError(sql.ErrNoRows)

	ts, err := m.GetLastSyncTime(context.Background(), models.TableMembers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for a never-synced table, got %v", ts)
	}
}

func TestGetLastSyncTime_RoundTripFormat(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	want := time.Date(2024, 6, 1, 12, 30, 45, 123456789, time.UTC)

	mock.ExpectQuery("SELECT value FROM sync_metadata").
		WithArgs("last_sync_time:" + models.TablePayments).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(want.Format(time.RFC3339Nano)))

	ts, err := m.GetLastSyncTime(context.Background(), models.TablePayments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(want) {
		t.Errorf("expected %v, got %v", want, ts)
	}
}

func TestGetLastSyncTime_BadValue(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_metadata").
		WithArgs("last_sync_time:" + models.TableMembers).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("not-a-timestamp"))

	if _, err := m.GetLastSyncTime(context.Background(), models.TableMembers); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSetLastSyncTime_UpsertsPerTableKey(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO sync_metadata").
		WithArgs("last_sync_time:"+models.TableExpenses, at.Format(time.RFC3339Nano), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := m.SetLastSyncTime(context.Background(), models.TableExpenses, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSeedCompleted(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM sync_metadata").
		WithArgs("seed_completed").
		WillReturnError(sql.ErrNoRows)

	done, err := m.SeedCompleted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Error("expected seed not completed on fresh database")
	}

	mock.ExpectQuery("SELECT value FROM sync_metadata").
		WithArgs("seed_completed").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("true"))

	done, err = m.SeedCompleted(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Error("expected seed completed after marker written")
	}
}

func TestMarkSeedCompleted_DBError(t *testing.T) {
	m, mock, db := newTestMetaStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_metadata").
		WillReturnError(errors.New("disk I/O error"))

	err := m.MarkSeedCompleted(context.Background())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
