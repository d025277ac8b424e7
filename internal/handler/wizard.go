package handler

import (
	"strings"

	"mygriya/internal/domain"
	"mygriya/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// maxIDFileSize is the upload limit for identity documents
const maxIDFileSize = 5 << 20

var (
	noticeFileUploaded = domain.Notice{Kind: domain.NoticeSuccess, Title: "File berhasil diunggah"}
	noticeFileRejected = domain.Notice{
		Kind:        domain.NoticeError,
		Title:       "File tidak didukung",
		Description: "Kirim foto identitas dalam format JPG atau PNG, maksimal 5MB.",
	}
	noticeNoUpload = domain.Notice{
		Kind:        domain.NoticeInfo,
		Title:       "Tidak ada unggahan yang diminta",
		Description: "Foto identitas dikirim pada langkah verifikasi pembayaran.",
	}
)

// newWizard creates the chat's payment wizard. A confirmed payment
// attaches the room to the user and lands on the dashboard.
func (h *Handler) newWizard(chatID int64, st *domain.ChatState) *domain.PaymentWizard {
	return domain.NewPaymentWizard(func(roomID string) {
		next, notice, err := h.sessionService.CompleteRental(st.App, roomID)
		if err != nil {
			h.logger.Error("Failed to complete rental",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.String("room_id", roomID),
			)
			st.Flash(service.RejectionNotice(err))
			return
		}
		st.App = next
		st.Flash(notice)
	})
}

// handleOrder opens the payment wizard for the tapped room
func (h *Handler) handleOrder(c tele.Context) error {
	chatID := c.Sender().ID
	roomID := callbackPayload(c)

	room, err := h.catalogService.Get(roomID)
	if err != nil {
		return h.reject(c, err)
	}

	return h.withChat(chatID, func(st *domain.ChatState) error {
		wizard := h.newWizard(chatID, st)
		if err := wizard.Open(room); err != nil {
			return h.reject(c, err)
		}

		st.Contact = nil
		st.ResetInput()
		if st.App.SelectedRoomID != room.ID {
			st.App = domain.Reduce(st.App, domain.SelectRoom{RoomID: room.ID})
		}
		st.Wizard = wizard
		st.Input = domain.InputIDNumber

		h.logger.Info("Payment wizard opened",
			zap.Int64("chat_id", chatID),
			zap.String("room_id", room.ID),
			zap.String("session_id", wizard.Session().ID),
		)

		return h.renderWizard(c, st)
	})
}

// handleIDType switches the identity document kind
func (h *Handler) handleIDType(c tele.Context) error {
	return h.wizardAction(c, func(w *domain.PaymentWizard) error {
		t, err := domain.ParseIDType(callbackPayload(c))
		if err != nil {
			return err
		}
		return w.SelectIDType(t)
	})
}

// handleMethod switches the payment channel
func (h *Handler) handleMethod(c tele.Context) error {
	return h.wizardAction(c, func(w *domain.PaymentWizard) error {
		m, err := domain.ParsePaymentMethod(callbackPayload(c))
		if err != nil {
			return err
		}
		return w.SelectMethod(m)
	})
}

func (h *Handler) handleWizardNext(c tele.Context) error {
	return h.wizardAction(c, func(w *domain.PaymentWizard) error {
		return w.Next()
	})
}

func (h *Handler) handleWizardBack(c tele.Context) error {
	return h.wizardAction(c, func(w *domain.PaymentWizard) error {
		return w.Back()
	})
}

// handleWizardTerms toggles the terms checkbox
func (h *Handler) handleWizardTerms(c tele.Context) error {
	return h.wizardAction(c, func(w *domain.PaymentWizard) error {
		return w.SetAgreedToTerms(!w.Session().AgreedToTerms)
	})
}

// handleWizardPay confirms the payment
func (h *Handler) handleWizardPay(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Wizard == nil {
			return h.reject(c, domain.ErrWizardClosed)
		}

		if err := st.Wizard.Confirm(); err != nil {
			return h.reject(c, err)
		}

		st.Wizard = nil
		st.ResetInput()

		if st.App.Page != domain.PageDashboard {
			return h.renderHome(c, st)
		}
		return h.renderDashboard(c, st)
	})
}

// handleWizardClose discards the session and returns to the room
func (h *Handler) handleWizardClose(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Wizard != nil {
			h.logger.Debug("Payment wizard closed",
				zap.Int64("chat_id", chatID),
				zap.String("step", string(st.Wizard.Step())),
			)
			st.Wizard.Close()
			st.Wizard = nil
		}
		st.ResetInput()

		room, err := h.selectedRoom(st)
		if err != nil {
			return h.renderHome(c, st)
		}
		return h.renderRoom(c, st, room)
	})
}

// handleIDFile attaches an uploaded photo or image document to the
// verification step
func (h *Handler) handleIDFile(c tele.Context) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Wizard == nil || st.Wizard.Step() != domain.StepVerification {
			return c.Send(noticeNoUpload.String())
		}

		ref, ok := idFileRef(c.Message())
		if !ok {
			return c.Send(noticeFileRejected.String())
		}

		if err := st.Wizard.AttachIDFile(ref); err != nil {
			return h.reject(c, err)
		}

		h.logger.Info("Identity file attached",
			zap.Int64("chat_id", chatID),
			zap.String("id_type", string(st.Wizard.Session().IDType)),
		)

		st.Flash(noticeFileUploaded)
		return h.renderWizard(c, st)
	})
}

// idFileRef returns the file id of an image upload within the size limit
func idFileRef(msg *tele.Message) (string, bool) {
	if msg == nil {
		return "", false
	}
	if msg.Photo != nil {
		if msg.Photo.FileSize > maxIDFileSize {
			return "", false
		}
		return msg.Photo.FileID, msg.Photo.FileID != ""
	}
	if doc := msg.Document; doc != nil {
		if !strings.HasPrefix(doc.MIME, "image/") || doc.FileSize > maxIDFileSize {
			return "", false
		}
		return doc.FileID, doc.FileID != ""
	}
	return "", false
}

// setIDNumber stores typed text as the identity number
func (h *Handler) setIDNumber(c tele.Context, st *domain.ChatState, text string) error {
	if st.Wizard == nil {
		st.ResetInput()
		return h.reject(c, domain.ErrWizardClosed)
	}
	if err := st.Wizard.SetIDNumber(text); err != nil {
		return h.reject(c, err)
	}
	return h.renderWizard(c, st)
}

// wizardAction applies one wizard transition and re-renders the step.
// A rejected transition leaves the session unchanged.
func (h *Handler) wizardAction(c tele.Context, action func(w *domain.PaymentWizard) error) error {
	chatID := c.Sender().ID

	return h.withChat(chatID, func(st *domain.ChatState) error {
		if st.Wizard == nil {
			return h.reject(c, domain.ErrWizardClosed)
		}

		if err := action(st.Wizard); err != nil {
			return h.reject(c, err)
		}

		// Free text is the identity number only while verifying
		if st.Wizard.Step() == domain.StepVerification {
			st.Input = domain.InputIDNumber
		} else {
			st.Input = domain.InputIdle
		}

		return h.renderWizard(c, st)
	})
}

func (h *Handler) renderWizard(c tele.Context, st *domain.ChatState) error {
	text, markup := wizardScreen(st.Wizard)
	return h.showWithNotices(c, st, text, markup)
}
