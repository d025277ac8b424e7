package handler

import (
	"mygriya/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start, /rooms and the home button
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("User opened home",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageHome})
		return h.renderHome(c, st)
	})
}

// handleCancel drops whatever the chat was typing and goes home
func (h *Handler) handleCancel(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.logger.Debug("Flow canceled",
			zap.Int64("chat_id", chatID),
			zap.String("input", string(st.Input)),
		)

		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageHome})
		return h.renderHome(c, st)
	})
}

// leaveFlows closes the wizard and the contact dialog, cancels a pending
// admin reply and forgets half-entered input
func (h *Handler) leaveFlows(chatID int64, st *domain.ChatState) {
	h.contactService.CancelReply(chatID)
	if st.Wizard != nil {
		st.Wizard.Close()
		st.Wizard = nil
	}
	st.Contact = nil
	st.ResetInput()
}

func (h *Handler) renderHome(c tele.Context, st *domain.ChatState) error {
	text, markup := homeScreen(h.catalogService.List(), st.App.User)
	return h.showWithNotices(c, st, text, markup)
}
