package handler

import (
	"strings"
	"unicode"

	"mygriya/internal/domain"
	"mygriya/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallback splits raw "\funique|payload" data that reached the
// generic handler
func splitCallback(raw string) (unique, payload string) {
	unique, payload, _ = strings.Cut(cleanCallbackData(raw), "|")
	return unique, payload
}

// callbackPayload returns the cleaned payload of the tapped button
func callbackPayload(c tele.Context) string {
	if cb := c.Callback(); cb != nil {
		return cleanCallbackData(cb.Data)
	}
	return ""
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The same screen was rendered again, e.g. a double tap
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the tapped message for callbacks and sends a new one otherwise
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if h.handleEditError(err, c, c.Sender().ID) == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// showWithNotices prepends the chat's queued notices to a screen
func (h *Handler) showWithNotices(c tele.Context, st *domain.ChatState, text string, markup *tele.ReplyMarkup) error {
	return h.show(c, noticeText(st.TakeNotices(), text), markup)
}

// reject surfaces a rejected transition. Callbacks get an alert, messages a reply.
func (h *Handler) reject(c tele.Context, err error) error {
	notice := service.RejectionNotice(err)

	h.logger.Debug("Transition rejected",
		zap.Int64("user_id", c.Sender().ID),
		zap.Error(err),
	)

	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: notice.Title, ShowAlert: true})
	}
	return c.Send(notice.String())
}

// handleCallback handles callback queries whose unique had no handler,
// e.g. buttons from an older keyboard layout
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := splitCallback(callback.Data)
	if callback.Unique != "" {
		unique, payload = callback.Unique, cleanCallbackData(callback.Data)
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("data", payload),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	callback.Unique = unique
	callback.Data = payload

	switch unique {
	case btnMainMenu.Unique:
		return h.handleStart(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnLogin.Unique:
		return h.handleLogin(c)
	case btnRegister.Unique:
		return h.handleRegister(c)
	case btnFeedback.Unique:
		return h.handleFeedback(c)
	case btnRoomBack.Unique:
		return h.handleRoomBack(c)
	case uniqueRoom:
		return h.handleRoomDetail(c)
	case uniqueOrder:
		return h.handleOrder(c)
	case uniqueContact:
		return h.handleContactOpen(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("unique", unique),
		zap.String("data", payload),
	)
	return c.Respond()
}
