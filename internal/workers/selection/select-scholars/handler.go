// internal/workers/selection/select-scholars/handler.go
package selectscholars

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline/aggregate"
	"scholarship-workers/internal/pipeline/rank"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "select-scholars"
)

var (
	ErrInvalidQuota    = errors.New("INVALID_QUOTA")
	ErrSelectionFailed = errors.New("SELECTION_FAILED")
)

type Handler struct {
	config *Config
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		redis:  redis,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		code := "SELECTION_FAILED"
		if errors.Is(err, ErrInvalidQuota) {
			code = "INVALID_QUOTA"
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.failJob(client, job, code, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	quota := input.Quota
	if quota < 0 {
		return nil, fmt.Errorf("%w: quota %d", ErrInvalidQuota, quota)
	}
	if quota == 0 {
		quota = h.config.DefaultQuota
	}

	excluded, err := h.priorWinners(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load prior winners: %v", ErrSelectionFailed, err)
	}

	result := rank.Select(input.Applicants, quota, excluded)

	if h.db != nil {
		if err := h.persistSelections(ctx, input.RunID, result.Selected); err != nil {
			return nil, fmt.Errorf("%w: persist selections: %v", ErrSelectionFailed, err)
		}
	}

	if err := h.recordWinners(ctx, result.Selected); err != nil {
		return nil, fmt.Errorf("%w: record winners: %v", ErrSelectionFailed, err)
	}

	excludedCount := 0
	for _, r := range input.Applicants {
		if r.IsEligible && excluded[r.Name] {
			excludedCount++
		}
	}

	h.logger.Info("selection complete", map[string]interface{}{
		"runId":    input.RunID,
		"selected": len(result.Selected),
		"ranked":   len(result.Ranked),
		"excluded": excludedCount,
	})

	return &Output{
		RunID:         input.RunID,
		Selected:      result.Selected,
		Ranked:        result.Ranked,
		SelectedCount: len(result.Selected),
		ExcludedCount: excludedCount,
		Warnings:      aggregate.Warnings(input.Applicants),
	}, nil
}

// priorWinners loads the set of previously selected scholar names. A missing
// Redis client means no exclusion list, not an error.
func (h *Handler) priorWinners(ctx context.Context) (map[string]bool, error) {
	if h.redis == nil {
		return nil, nil
	}
	names, err := h.redis.SMembers(ctx, h.config.WinnersSetKey).Result()
	if err != nil {
		return nil, err
	}
	winners := make(map[string]bool, len(names))
	for _, n := range names {
		winners[n] = true
	}
	return winners, nil
}

func (h *Handler) recordWinners(ctx context.Context, selected []models.RankedRecord) error {
	if h.redis == nil || len(selected) == 0 {
		return nil
	}
	names := make([]interface{}, 0, len(selected))
	for _, s := range selected {
		names = append(names, s.Name)
	}
	return h.redis.SAdd(ctx, h.config.WinnersSetKey, names...).Err()
}

func (h *Handler) persistSelections(ctx context.Context, runID string, selected []models.RankedRecord) error {
	for _, s := range selected {
		_, err := h.db.ExecContext(ctx, `
			INSERT INTO selections (run_id, rank, applicant_key, name, total_score)
			VALUES ($1, $2, $3, $4, $5)`,
			runID, s.Rank, s.Key, s.Name, s.TotalScore)
		if err != nil {
			return fmt.Errorf("insert selection %s: %w", s.Key, err)
		}
	}
	return nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
