package handler

import (
	"mygriya/internal/domain"
	"mygriya/internal/service"

	tele "gopkg.in/telebot.v3"
)

// handleFeedback starts the feedback prompts
func (h *Handler) handleFeedback(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		h.leaveFlows(chatID, st)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageFeedback})
		st.Input = domain.InputFeedbackName
		return h.show(c, "💬 "+domain.PageFeedback.Title()+"\n\nKami menghargai masukan Anda untuk meningkatkan layanan MyGriya.\n\nKirim nama Anda:", cancelMarkup())
	})
}

// feedbackStep consumes one answer of the feedback prompts
func (h *Handler) feedbackStep(c tele.Context, st *domain.ChatState, text string) error {
	switch st.Input {
	case domain.InputFeedbackName:
		st.Form.Name = text
		st.Input = domain.InputFeedbackEmail
		return c.Send("Kirim email Anda:", cancelMarkup())

	case domain.InputFeedbackEmail:
		st.Form.Email = text
		st.Input = domain.InputFeedbackSubject
		return c.Send("Kirim subjek feedback:", cancelMarkup())

	case domain.InputFeedbackSubject:
		st.Form.Subject = text
		st.Input = domain.InputFeedbackMessage
		return c.Send("Kirim pesan Anda:", cancelMarkup())

	case domain.InputFeedbackMessage:
		notice, err := h.feedbackService.Submit(service.Feedback{
			Name:    st.Form.Name,
			Email:   st.Form.Email,
			Subject: st.Form.Subject,
			Message: text,
		})
		if err != nil {
			st.ResetInput()
			st.Input = domain.InputFeedbackName
			return c.Send(service.RejectionNotice(err).String()+"\n\nKirim nama Anda:", cancelMarkup())
		}

		st.ResetInput()
		st.Flash(notice)
		st.App = domain.Reduce(st.App, domain.Navigate{Page: domain.PageHome})
		return h.renderHome(c, st)
	}
	return nil
}
