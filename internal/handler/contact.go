package handler

import (
	"mygriya/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleContactOpen opens the contact-admin dialog for the tapped room
func (h *Handler) handleContactOpen(c tele.Context) error {
	chatID := c.Sender().ID

	room, err := h.catalogService.Get(callbackPayload(c))
	if err != nil {
		return h.reject(c, err)
	}

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Wizard != nil {
			st.Wizard.Close()
			st.Wizard = nil
		}
		if st.App.SelectedRoomID != room.ID {
			st.App = domain.Reduce(st.App, domain.SelectRoom{RoomID: room.ID})
		}

		st.ResetInput()
		st.Contact = h.contactService.Open(chatID, room)
		st.Input = domain.InputContactMessage

		h.logger.Debug("Contact dialog opened", zap.Int64("chat_id", chatID), zap.String("room_id", room.ID))

		return h.renderContact(c, st)
	})
}

// handleContactMethod switches the contact option
func (h *Handler) handleContactMethod(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Contact == nil {
			return h.reject(c, domain.ErrDialogClosed)
		}

		m, err := domain.ParseContactMethod(callbackPayload(c))
		if err != nil {
			return h.reject(c, err)
		}
		if err := st.Contact.SelectMethod(m); err != nil {
			return h.reject(c, err)
		}
		return h.renderContact(c, st)
	})
}

// handleContactCancel closes the dialog without sending
func (h *Handler) handleContactCancel(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		st.Contact = nil
		st.ResetInput()

		room, err := h.selectedRoom(st)
		if err != nil {
			return h.renderHome(c, st)
		}
		return h.renderRoom(c, st, room)
	})
}

// submitContact sends the typed message. The dialog closes on success and
// the admin reply arrives later as its own message.
func (h *Handler) submitContact(c tele.Context, st *domain.ChatState, text string) error {
	chatID := c.Sender().ID

	if st.Contact == nil {
		st.ResetInput()
		return h.reject(c, domain.ErrDialogClosed)
	}

	st.Contact.Message = text
	sub, err := h.contactService.Submit(chatID, st.Contact, func(reply domain.Notice) {
		if err := h.deliver(chatID, reply.String()); err != nil {
			h.logger.Warn("Failed to deliver admin reply", zap.Error(err), zap.Int64("chat_id", chatID))
		}
	})
	if err != nil {
		return h.reject(c, err)
	}

	st.Contact = nil
	st.ResetInput()
	st.Flash(sub.Sent)

	room, err := h.selectedRoom(st)
	if err != nil {
		return h.renderHome(c, st)
	}
	return h.renderRoom(c, st, room)
}

func (h *Handler) renderContact(c tele.Context, st *domain.ChatState) error {
	text, markup := contactScreen(st.Contact)
	return h.showWithNotices(c, st, text, markup)
}
