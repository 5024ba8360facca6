// internal/workers/notification/notify-scholars/handler.go
package notifyscholars

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"scholarship-workers/internal/common/logger"
	"scholarship-workers/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "notify-scholars"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailSender sends a congratulation email. Satisfied by the SES client
// wrapper.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender sends a congratulation SMS. Satisfied by the SNS client wrapper.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config *Config
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewHandler(config *Config, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		email:  email,
		sms:    sms,
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "NOTIFICATION_FAILED").Inc()
		h.failJob(client, job, "NOTIFICATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

// execute notifies every scholar through each enabled channel. A per-scholar
// delivery failure is collected, not fatal; one bounced address must not stop
// the rest of the batch.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	output := &Output{RunID: input.RunID}

	for _, s := range input.Scholars {
		notified := false

		if h.config.EmailEnabled && h.email != nil && s.Email != "" {
			if err := h.sendEmail(ctx, s); err != nil {
				output.Failures = append(output.Failures,
					fmt.Sprintf("email to %s: %v", s.Name, err))
			} else {
				output.EmailsSent++
				notified = true
			}
		}

		if h.config.SMSEnabled && h.sms != nil && s.Phone != "" {
			if err := h.sendSMS(ctx, s); err != nil {
				output.Failures = append(output.Failures,
					fmt.Sprintf("sms to %s: %v", s.Name, err))
			} else {
				output.SMSSent++
				notified = true
			}
		}

		if !notified {
			output.Skipped++
		}
	}

	h.logger.Info("notifications dispatched", map[string]interface{}{
		"runId":    input.RunID,
		"emails":   output.EmailsSent,
		"sms":      output.SMSSent,
		"skipped":  output.Skipped,
		"failures": len(output.Failures),
	})

	return output, nil
}

func (h *Handler) sendEmail(ctx context.Context, s Scholar) error {
	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		return fmt.Errorf("invalid email address: %s", s.Email)
	}

	subject := "장학생 선발 안내"
	body := fmt.Sprintf(
		"%s님, 축하합니다!\n\n장학생으로 선발되셨습니다.\n선발 순위: %d위\n총점: %.2f점\n\n자세한 안내는 추후 이메일로 전달됩니다.",
		s.Name, s.Rank, s.TotalScore)

	_, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(h.config.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{s.Email},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, s Scholar) error {
	message := fmt.Sprintf("[장학재단] %s님, 장학생으로 선발되셨습니다. (%d위)", s.Name, s.Rank)

	_, err := h.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(s.Phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(h.config.SMSSenderID),
			},
		},
	})
	return err
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
