package service

import (
	"strconv"
	"time"

	"mygriya/internal/domain"
	"mygriya/internal/scheduler"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService runs the contact-admin dialog. The simulated admin reply
// is owned by the chat and is dropped when the chat's contact session ends.
type ContactService struct {
	scheduler  *scheduler.Scheduler
	replyDelay time.Duration
	logger     *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(s *scheduler.Scheduler, replyDelay time.Duration, logger *zap.Logger) *ContactService {
	return &ContactService{
		scheduler:  s,
		replyDelay: replyDelay,
		logger:     logger,
	}
}

func replyKey(chatID int64) string {
	return "admin-reply:" + strconv.FormatInt(chatID, 10)
}

// Open starts a new dialog for the room. A reply still pending from an
// earlier dialog is canceled.
func (s *ContactService) Open(chatID int64, room domain.Room) *domain.ContactForm {
	s.CancelReply(chatID)
	return domain.NewContactForm(room.Name)
}

// Submit sends the message and schedules the admin reply through deliver.
// A blank message is rejected and nothing is scheduled.
func (s *ContactService) Submit(chatID int64, form *domain.ContactForm, deliver func(domain.Notice)) (domain.ContactSubmission, error) {
	if form == nil {
		return domain.ContactSubmission{}, domain.ErrDialogClosed
	}

	sub, err := form.Submit()
	if err != nil {
		return domain.ContactSubmission{}, err
	}

	ticket := uuid.NewString()
	s.logger.Info("Contact message sent",
		zap.Int64("chat_id", chatID),
		zap.String("ticket", ticket),
		zap.String("room", sub.RoomName),
		zap.String("method", string(sub.Method)),
	)

	reply := sub.Reply
	s.scheduler.Schedule(replyKey(chatID), s.replyDelay, func() {
		s.logger.Debug("Delivering admin reply", zap.Int64("chat_id", chatID), zap.String("ticket", ticket))
		deliver(reply)
	})

	return sub, nil
}

// CancelReply drops a pending admin reply for the chat
func (s *ContactService) CancelReply(chatID int64) {
	if s.scheduler.Cancel(replyKey(chatID)) {
		s.logger.Debug("Pending admin reply canceled", zap.Int64("chat_id", chatID))
	}
}

// ReplyPending reports whether the chat still waits for an admin reply
func (s *ContactService) ReplyPending(chatID int64) bool {
	return s.scheduler.Pending(replyKey(chatID))
}
