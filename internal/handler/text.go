package handler

import (
	"strings"

	"mygriya/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const idleText = "Gunakan tombol di bawah pesan, atau ketik /start untuk melihat daftar kamar."

// handleText routes free text to the prompt the chat is answering
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Unknown commands never count as answers
	if strings.HasPrefix(text, "/") {
		return c.Send(idleText)
	}

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.logger.Debug("Text received",
			zap.Int64("chat_id", chatID),
			zap.String("input", string(st.Input)),
		)

		switch st.Input {
		case domain.InputLoginEmail, domain.InputLoginPassword:
			return h.loginStep(c, st, text)
		case domain.InputRegisterName, domain.InputRegisterEmail, domain.InputRegisterPassword:
			return h.registerStep(c, st, text)
		case domain.InputFeedbackName, domain.InputFeedbackEmail, domain.InputFeedbackSubject, domain.InputFeedbackMessage:
			return h.feedbackStep(c, st, text)
		case domain.InputContactMessage:
			return h.submitContact(c, st, text)
		case domain.InputIDNumber:
			return h.setIDNumber(c, st, text)
		default:
			return c.Send(idleText)
		}
	})
}
