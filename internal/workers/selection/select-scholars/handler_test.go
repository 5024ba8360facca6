// internal/workers/selection/select-scholars/handler_test.go
package selectscholars

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		DefaultQuota:  50,
		WinnersSetKey: "scholarship:winners",
		Timeout:       30 * time.Second,
	}
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func applicant(name string, eligible bool, total float64) models.ApplicantRecord {
	return models.ApplicantRecord{
		Key:        name,
		Name:       name,
		IsEligible: eligible,
		TotalScore: total,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	_, rdb := setupMiniRedis(t)
	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Quota: 2,
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
			applicant("c", true, 80),
			applicant("d", false, 99),
		},
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 2, output.SelectedCount)
	assert.Equal(t, "b", output.Selected[0].Name)
	assert.Equal(t, "c", output.Selected[1].Name)
	assert.Len(t, output.Ranked, 3)
}

func TestHandler_Execute_DefaultQuota(t *testing.T) {
	cfg := createTestConfig()
	cfg.DefaultQuota = 1
	_, rdb := setupMiniRedis(t)
	handler := NewHandler(cfg, nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
		},
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.SelectedCount)
	assert.Equal(t, "b", output.Selected[0].Name)
}

func TestHandler_Execute_NegativeQuota(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{Quota: -1})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuota))
}

func TestHandler_Execute_NoApplicants(t *testing.T) {
	_, rdb := setupMiniRedis(t)
	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{RunID: "run-1"})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.SelectedCount)
	assert.Empty(t, output.Selected)
}

// ==========================
// Prior Winner Exclusion Tests
// ==========================

func TestHandler_Execute_ExcludesPriorWinners(t *testing.T) {
	mr, rdb := setupMiniRedis(t)
	mr.SetAdd("scholarship:winners", "b")

	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Quota: 5,
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
		},
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.SelectedCount)
	assert.Equal(t, "a", output.Selected[0].Name)
	assert.Equal(t, 1, output.ExcludedCount)
}

func TestHandler_Execute_RecordsNewWinners(t *testing.T) {
	mr, rdb := setupMiniRedis(t)
	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Quota: 1,
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
		},
	}

	_, err := handler.Execute(context.Background(), input)
	assert.NoError(t, err)

	members, err := mr.Members("scholarship:winners")
	assert.NoError(t, err)
	assert.Equal(t, []string{"b"}, members)
}

func TestHandler_Execute_RerunDoesNotReselect(t *testing.T) {
	mr, rdb := setupMiniRedis(t)
	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Quota: 1,
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
		},
	}

	first, err := handler.Execute(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "b", first.Selected[0].Name)

	// Next round: b is now a prior winner.
	input.Applicants = []models.ApplicantRecord{
		applicant("a", true, 70),
		applicant("b", true, 90),
	}
	second, err := handler.Execute(context.Background(), input)
	assert.NoError(t, err)
	assert.Equal(t, "a", second.Selected[0].Name)

	members, err := mr.Members("scholarship:winners")
	assert.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestHandler_Execute_RedisUnavailable(t *testing.T) {
	mr, rdb := setupMiniRedis(t)
	mr.Close()

	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID:      "run-1",
		Quota:      1,
		Applicants: []models.ApplicantRecord{applicant("a", true, 70)},
	}

	_, err := handler.Execute(context.Background(), input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectionFailed))
}

func TestHandler_Execute_WinnerLookupError(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSMembers("scholarship:winners").SetErr(errors.New("MOVED 866 127.0.0.1:7001"))

	handler := NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID:      "run-1",
		Quota:      1,
		Applicants: []models.ApplicantRecord{applicant("a", true, 70)},
	}

	_, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectionFailed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Persistence Tests
// ==========================

func TestHandler_Execute_PersistsSelections(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	_, rdb := setupMiniRedis(t)

	mock.ExpectExec("INSERT INTO selections").
		WithArgs("run-1", 1, "b", "b", 90.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	handler := NewHandler(createTestConfig(), db, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Quota: 1,
		Applicants: []models.ApplicantRecord{
			applicant("a", true, 70),
			applicant("b", true, 90),
		},
	}

	_, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PersistenceFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	_, rdb := setupMiniRedis(t)

	mock.ExpectExec("INSERT INTO selections").WillReturnError(errors.New("deadlock"))

	handler := NewHandler(createTestConfig(), db, rdb, logger.NewTestLogger(t))

	input := &Input{
		RunID:      "run-1",
		Quota:      1,
		Applicants: []models.ApplicantRecord{applicant("a", true, 70)},
	}

	_, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSelectionFailed))
}
