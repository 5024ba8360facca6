// internal/workers/selection/build-selection-report/handler.go
package buildselectionreport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"
	"scholarship-workers/internal/pipeline/report"
	"scholarship-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "build-selection-report"
)

var (
	ErrReportValidationFailed = errors.New("REPORT_VALIDATION_FAILED")
)

type Handler struct {
	config *Config
	schema *gojsonschema.Schema
	logger logger.Logger
}

// NewHandler compiles the statistics schema from the activity registry. The
// registry entry is the contract downstream report consumers rely on; every
// completed job's statistics document must satisfy it.
func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := loadStatisticsSchema(config.RegistryPath)
	if err != nil {
		return nil, err
	}
	return &Handler{
		config: config,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func loadStatisticsSchema(path string) (*gojsonschema.Schema, error) {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load activity registry: %w", err)
	}
	activity, ok := reg.Activity(TaskType)
	if !ok {
		return nil, fmt.Errorf("activity %q missing from registry %s", TaskType, path)
	}
	statsSchema, ok := activity.OutputProperty("statistics")
	if !ok {
		return nil, fmt.Errorf("activity %q has no statistics output schema", TaskType)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(statsSchema))
	if err != nil {
		return nil, fmt.Errorf("compile statistics schema: %w", err)
	}
	return schema, nil
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "REPORT_VALIDATION_FAILED").Inc()
		h.failJob(client, job, "REPORT_VALIDATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	stats := report.Summarize(input.Selected, input.TotalApplicants)

	doc, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal statistics: %v", ErrReportValidationFailed, err)
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportValidationFailed, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrReportValidationFailed, strings.Join(msgs, "; "))
	}

	h.logger.Info("report built", map[string]interface{}{
		"runId":    input.RunID,
		"selected": stats.SelectedCount,
		"total":    stats.TotalApplicants,
	})

	return &Output{
		RunID:      input.RunID,
		Statistics: stats,
		Warnings:   input.Warnings,
	}, nil
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
