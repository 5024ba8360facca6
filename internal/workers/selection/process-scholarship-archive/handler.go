// internal/workers/selection/process-scholarship-archive/handler.go
package processscholarshiparchive

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/models"
	"scholarship-workers/internal/pipeline"
	"scholarship-workers/internal/pipeline/aggregate"
	"scholarship-workers/internal/pipeline/audit"
	"scholarship-workers/internal/pipeline/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "process-scholarship-archive"
)

var (
	ErrArchiveTooLarge = errors.New("ARCHIVE_TOO_LARGE")
	ErrArchiveInvalid  = errors.New("ARCHIVE_INVALID")
)

// AuditIndexer stores the audit trail document. Satisfied by the
// Elasticsearch client wrapper.
type AuditIndexer interface {
	Index(ctx context.Context, index, documentID string, body []byte) error
}

type Handler struct {
	config    *Config
	db        *sql.DB
	indexer   AuditIndexer
	processor *pipeline.Processor
	scorer    *scoring.Engine
	logger    logger.Logger
}

func NewHandler(config *Config, db *sql.DB, indexer AuditIndexer, log logger.Logger) *Handler {
	params := aggregate.Params{
		GraduationCredits:  config.GraduationCredits,
		TwoYearCreditMax:   config.TwoYearCreditMax,
		ThreeYearCreditMax: config.ThreeYearCreditMax,
	}
	return &Handler{
		config:    config,
		db:        db,
		indexer:   indexer,
		processor: pipeline.NewProcessor(params, log),
		scorer:    scoring.NewEngine(config.Scoring),
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// NewHandlerWithProcessor injects a custom archive processor, used by tests
// to substitute PDF text extraction.
func NewHandlerWithProcessor(config *Config, db *sql.DB, indexer AuditIndexer, proc *pipeline.Processor, log logger.Logger) *Handler {
	h := NewHandler(config, db, indexer, log)
	h.processor = proc
	return h
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
		code := "ARCHIVE_PROCESSING_FAILED"
		if errors.Is(err, ErrArchiveTooLarge) {
			code = "ARCHIVE_TOO_LARGE"
		} else if errors.Is(err, ErrArchiveInvalid) {
			code = "ARCHIVE_INVALID"
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
	data, err := base64.StdEncoding.DecodeString(input.ArchiveBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: decode archive: %v", ErrArchiveInvalid, err)
	}

	if h.config.MaxArchiveBytes > 0 && int64(len(data)) > h.config.MaxArchiveBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d",
			ErrArchiveTooLarge, len(data), h.config.MaxArchiveBytes)
	}

	runID := uuid.New().String()
	trail := audit.NewTrail(runID)
	if input.BatchID != "" {
		trail.Add("job", "배치 ID: %s", input.BatchID)
	}

	result, err := h.processor.ProcessArchive(data, trail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveInvalid, err)
	}

	h.scorer.ScoreAll(result.Records)
	trail.Add("scoring", "점수 산정 완료: %d명", len(result.Records))

	if h.db != nil {
		if err := h.persistApplicants(ctx, runID, result.Records); err != nil {
			h.logger.Error("failed to persist applicants", map[string]interface{}{
				"runId": runID,
				"error": err,
			})
			return nil, err
		}
	}

	h.indexTrail(ctx, trail)

	h.logger.Info("archive processed", map[string]interface{}{
		"runId":      runID,
		"applicants": len(result.Records),
		"warnings":   len(result.Warnings),
	})

	return &Output{
		RunID:           runID,
		ApplicantCount:  len(result.Records),
		Applicants:      result.Records,
		Warnings:        result.Warnings,
		TotalApplicants: len(result.Records),
	}, nil
}

func (h *Handler) persistApplicants(ctx context.Context, runID string, records []models.ApplicantRecord) error {
	for _, r := range records {
		notes, _ := json.Marshal(r.ParseNotes)
		_, err := h.db.ExecContext(ctx, `
			INSERT INTO applicants (
				run_id, applicant_key, name, grade, max_grade, major,
				completed_credits, graduation_credits, gpa, region,
				is_eligible, total_score, parse_notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			runID, r.Key, r.Name, r.Grade, r.MaxGrade, r.Major,
			r.CompletedCredits, r.GraduationCredits, r.GPA, r.Region,
			r.IsEligible, r.TotalScore, notes)
		if err != nil {
			return fmt.Errorf("insert applicant %s: %w", r.Key, err)
		}
	}
	return nil
}

// indexTrail is best-effort: a missing audit store never fails the job.
func (h *Handler) indexTrail(ctx context.Context, trail *audit.Trail) {
	if h.indexer == nil {
		return
	}
	body, err := trail.Document()
	if err != nil {
		h.logger.Warn("failed to marshal audit trail", map[string]interface{}{"error": err})
		return
	}
	if err := h.indexer.Index(ctx, h.config.AuditIndex, trail.RunID, body); err != nil {
		h.logger.Warn("failed to index audit trail", map[string]interface{}{
			"runId": trail.RunID,
			"error": err,
		})
	}
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
