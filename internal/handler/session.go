package handler

import (
	"mygriya/internal/domain"
	"mygriya/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLogin starts the login prompts
func (h *Handler) handleLogin(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.App.User.LoggedIn {
			return h.renderHome(c, st)
		}

		h.leaveFlows(chatID, st)
		return h.promptLogin(c, st)
	})
}

func (h *Handler) promptLogin(c tele.Context, st *domain.ChatState) error {
	st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageLogin})
	st.ResetInput()
	st.Input = domain.InputLoginEmail
	return h.showWithNotices(c, st, "🔑 "+domain.PageLogin.Title()+"\n\nKirim email Anda:", cancelMarkup())
}

// handleRegister starts the registration prompts
func (h *Handler) handleRegister(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageRegister})
		st.Input = domain.InputRegisterName
		return h.show(c, "📝 Daftar Akun MyGriya\n\nKirim nama lengkap Anda:", cancelMarkup())
	})
}

// handleLogout resets the user and returns home
func (h *Handler) handleLogout(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)

		next, notice := h.sessionService.Logout(st.App)
		st.App = next
		st.Flash(notice)
		return h.renderHome(c, st)
	})
}

// loginStep consumes one answer of the login prompts
func (h *Handler) loginStep(c tele.Context, st *domain.ChatState, text string) error {
	switch st.Input {
	case domain.InputLoginEmail:
		st.Form.Email = text
		st.Input = domain.InputLoginPassword
		return c.Send("Kirim password Anda:", cancelMarkup())

	case domain.InputLoginPassword:
		next, notice, err := h.sessionService.Login(st.App, st.Form.Email, text)
		if err != nil {
			st.Flash(service.RejectionNotice(err))
			return h.promptLogin(c, st)
		}

		h.logger.Info("Chat logged in", zap.Int64("chat_id", c.Sender().ID))

		st.App = next
		st.ResetInput()
		st.Flash(notice)
		return h.renderHome(c, st)
	}
	return nil
}

// registerStep consumes one answer of the registration prompts
func (h *Handler) registerStep(c tele.Context, st *domain.ChatState, text string) error {
	switch st.Input {
	case domain.InputRegisterName:
		st.Form.Name = text
		st.Input = domain.InputRegisterEmail
		return c.Send("Kirim email Anda:", cancelMarkup())

	case domain.InputRegisterEmail:
		st.Form.Email = text
		st.Input = domain.InputRegisterPassword
		return c.Send("Kirim password Anda:", cancelMarkup())

	case domain.InputRegisterPassword:
		next, notice, err := h.sessionService.Register(st.App, service.Registration{
			FullName: st.Form.Name,
			Email:    st.Form.Email,
			Password: text,
		})
		if err != nil {
			st.ResetInput()
			st.Input = domain.InputRegisterName
			return c.Send(service.RejectionNotice(err).String()+"\n\nKirim nama lengkap Anda:", cancelMarkup())
		}

		st.App = next
		st.Flash(notice)
		return h.promptLogin(c, st)
	}
	return nil
}
