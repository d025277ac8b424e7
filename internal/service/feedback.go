package service

import (
	"strings"

	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrIncompleteFeedback is returned when a feedback field is blank
var ErrIncompleteFeedback = errors.New("name, email, subject and message are required")

// Feedback is the critique-and-suggestions form
type Feedback struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// FeedbackService accepts feedback. Submissions are logged, not stored.
type FeedbackService struct {
	logger *zap.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(logger *zap.Logger) *FeedbackService {
	return &FeedbackService{logger: logger}
}

// Submit validates and records the feedback
func (s *FeedbackService) Submit(fb Feedback) (domain.Notice, error) {
	for _, field := range []string{fb.Name, fb.Email, fb.Subject, fb.Message} {
		if strings.TrimSpace(field) == "" {
			return domain.Notice{}, ErrIncompleteFeedback
		}
	}

	s.logger.Info("Feedback submitted",
		zap.String("name", strings.TrimSpace(fb.Name)),
		zap.String("email", strings.TrimSpace(fb.Email)),
		zap.String("subject", strings.TrimSpace(fb.Subject)),
		zap.String("message", strings.TrimSpace(fb.Message)),
	)

	return domain.Notice{
		Kind:  domain.NoticeSuccess,
		Title: "Terima kasih atas feedback Anda!",
	}, nil
}
