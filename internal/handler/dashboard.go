package handler

import (
	"mygriya/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleDashboard shows the tenant dashboard
func (h *Handler) handleDashboard(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageDashboard})
		return h.renderDashboard(c, st)
	})
}

func (h *Handler) renderDashboard(c tele.Context, st *domain.ChatState) error {
	now := h.now()

	d, err := h.dashService.Build(st.App.User, now)
	if err != nil {
		h.logger.Warn("Dashboard unavailable",
			zap.Error(err),
			zap.Int64("chat_id", c.Sender().ID),
			zap.String("room_id", st.App.User.RentedRoomID),
		)
		return h.reject(c, err)
	}

	text, markup := dashboardScreen(d, now)
	return h.showWithNotices(c, st, text, markup)
}
