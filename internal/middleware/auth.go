package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const loginRequiredText = "Silakan login terlebih dahulu. Ketik /login untuk masuk."

// RequireLogin creates middleware that only lets logged-in chats through
func RequireLogin(isLoggedIn func(chatID int64) bool, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !isLoggedIn(userID) {
				logger.Debug("Rejected guest on tenant endpoint",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: loginRequiredText, ShowAlert: true})
				}
				return c.Send(loginRequiredText)
			}

			// User is logged in, continue
			return next(c)
		}
	}
}
