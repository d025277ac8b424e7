package handler

import (
	"mygriya/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleRoomDetail opens the detail view of the tapped room
func (h *Handler) handleRoomDetail(c tele.Context) error {
	chatID := c.Sender().ID
	roomID := callbackPayload(c)

	room, err := h.catalogService.Get(roomID)
	if err != nil {
		h.logger.Warn("Room detail requested for unknown room",
			zap.Int64("chat_id", chatID),
			zap.String("room_id", roomID),
		)
		return h.reject(c, err)
	}

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.SelectRoom{RoomID: room.ID})

		h.logger.Debug("Room selected", zap.Int64("chat_id", chatID), zap.String("room_id", room.ID))

		return h.renderRoom(c, st, room)
	})
}

// handleRoomBack leaves the detail view
func (h *Handler) handleRoomBack(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.CloseRoom{})
		return h.renderHome(c, st)
	})
}

func (h *Handler) renderRoom(c tele.Context, st *domain.ChatState, room domain.Room) error {
	text, markup := roomDetailScreen(room)
	return h.showWithNotices(c, st, text, markup)
}

// selectedRoom resolves the room whose detail view the chat is on
func (h *Handler) selectedRoom(st *domain.ChatState) (domain.Room, error) {
	if st.App.SelectedRoomID == "" {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return h.catalogService.Get(st.App.SelectedRoomID)
}
