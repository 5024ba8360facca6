// internal/workers/notification/notify-scholars/handler_test.go
package notifyscholars

import (
	"context"
	"errors"
	"testing"
	"time"

	"scholarship-workers/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "scholarship@example.org",
		SMSSenderID:  "SCHOLARSHIP",
		Timeout:      30 * time.Second,
	}
}

type fakeEmailSender struct {
	sent []*ses.SendEmailInput
	err  error
}

func (f *fakeEmailSender) SendEmail(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &ses.SendEmailOutput{}, nil
}

type fakeSMSSender struct {
	sent []*sns.PublishInput
	err  error
}

func (f *fakeSMSSender) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &sns.PublishOutput{}, nil
}

func scholar(name string, rank int, email, phone string) Scholar {
	return Scholar{
		Name:       name,
		Rank:       rank,
		TotalScore: 85.5,
		Email:      email,
		Phone:      phone,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	handler := NewHandler(createTestConfig(), email, sms, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Scholars: []Scholar{
			scholar("김민준", 1, "minjun@example.org", "+821012345678"),
			scholar("이서연", 2, "seoyeon@example.org", ""),
		},
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 2, output.EmailsSent)
	assert.Equal(t, 1, output.SMSSent)
	assert.Equal(t, 0, output.Skipped)
	assert.Empty(t, output.Failures)
	assert.Len(t, email.sent, 2)
	assert.Equal(t, []string{"minjun@example.org"}, email.sent[0].Destination.ToAddresses)
	assert.Equal(t, "scholarship@example.org", *email.sent[0].Source)
}

func TestHandler_Execute_NoContactInfoSkips(t *testing.T) {
	handler := NewHandler(createTestConfig(), &fakeEmailSender{}, &fakeSMSSender{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		RunID:    "run-1",
		Scholars: []Scholar{scholar("김민준", 1, "", "")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.EmailsSent)
	assert.Equal(t, 1, output.Skipped)
}

func TestHandler_Execute_InvalidEmailIsFailure(t *testing.T) {
	handler := NewHandler(createTestConfig(), &fakeEmailSender{}, &fakeSMSSender{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		RunID:    "run-1",
		Scholars: []Scholar{scholar("김민준", 1, "not-an-email", "")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.EmailsSent)
	assert.Len(t, output.Failures, 1)
	assert.Contains(t, output.Failures[0], "invalid email address")
}

func TestHandler_Execute_SendFailureDoesNotStopBatch(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("throttled")}
	sms := &fakeSMSSender{}
	handler := NewHandler(createTestConfig(), email, sms, logger.NewTestLogger(t))

	input := &Input{
		RunID: "run-1",
		Scholars: []Scholar{
			scholar("김민준", 1, "minjun@example.org", "+821012345678"),
			scholar("이서연", 2, "seoyeon@example.org", "+821087654321"),
		},
	}

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 0, output.EmailsSent)
	assert.Equal(t, 2, output.SMSSent)
	assert.Len(t, output.Failures, 2)
}

func TestHandler_Execute_ChannelsDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.EmailEnabled = false
	cfg.SMSEnabled = false

	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	handler := NewHandler(cfg, email, sms, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		RunID:    "run-1",
		Scholars: []Scholar{scholar("김민준", 1, "minjun@example.org", "+821012345678")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.EmailsSent)
	assert.Equal(t, 0, output.SMSSent)
	assert.Equal(t, 1, output.Skipped)
	assert.Empty(t, email.sent)
	assert.Empty(t, sms.sent)
}

func TestHandler_Execute_SMSMessageContent(t *testing.T) {
	cfg := createTestConfig()
	cfg.EmailEnabled = false
	sms := &fakeSMSSender{}
	handler := NewHandler(cfg, nil, sms, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{
		RunID:    "run-1",
		Scholars: []Scholar{scholar("김민준", 3, "", "+821012345678")},
	})

	assert.NoError(t, err)
	assert.Len(t, sms.sent, 1)
	assert.Contains(t, *sms.sent[0].Message, "김민준")
	assert.Contains(t, *sms.sent[0].Message, "3위")
	assert.Equal(t, "+821012345678", *sms.sent[0].PhoneNumber)
}
