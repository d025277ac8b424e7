package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logger logs every update with its outcome and duration
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int64("user_id", c.Sender().ID),
				zap.Duration("duration", time.Since(start)),
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("unique", cb.Unique), zap.String("data", cb.Data))
			} else if c.Message() != nil {
				fields = append(fields, zap.Bool("text", c.Text() != ""))
			}

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
