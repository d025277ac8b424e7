package handler

import (
	"sync"
	"time"

	"mygriya/internal/domain"
	"mygriya/internal/middleware"
	"mygriya/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	catalogService  *service.CatalogService
	sessionService  *service.SessionService
	dashService     *service.DashboardService
	contactService  *service.ContactService
	feedbackService *service.FeedbackService
	logger          *zap.Logger
	now             func() time.Time

	// deliver pushes a message to a chat outside of an update, used for
	// the delayed admin reply
	deliver func(chatID int64, text string) error

	// Chat states (in-memory, one logical actor per chat)
	states   map[int64]*chatSlot
	stateMux sync.Mutex
}

// chatSlot serializes updates of one chat. telebot runs handlers
// concurrently, so two taps on the same keyboard may race otherwise.
type chatSlot struct {
	mu    sync.Mutex
	state *domain.ChatState
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	catalogService *service.CatalogService,
	sessionService *service.SessionService,
	dashService *service.DashboardService,
	contactService *service.ContactService,
	feedbackService *service.FeedbackService,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:             bot,
		catalogService:  catalogService,
		sessionService:  sessionService,
		dashService:     dashService,
		contactService:  contactService,
		feedbackService: feedbackService,
		logger:          logger,
		now:             time.Now,
		states:          make(map[int64]*chatSlot),
	}
	h.deliver = h.sendToChat
	return h
}

func (h *Handler) sendToChat(chatID int64, text string) error {
	_, err := h.bot.Send(tele.ChatID(chatID), text)
	return err
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.Logger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/rooms", h.handleStart)
	h.bot.Handle("/login", h.handleLogin)
	h.bot.Handle("/register", h.handleRegister)
	h.bot.Handle("/feedback", h.handleFeedback)
	h.bot.Handle("/cancel", h.handleCancel)

	tenant := h.bot.Group()
	tenant.Use(middleware.RequireLogin(h.IsLoggedIn, h.logger))
	tenant.Handle("/dashboard", h.handleDashboard)
	tenant.Handle("/logout", h.handleLogout)
	tenant.Handle(&btnDashboard, h.handleDashboard)
	tenant.Handle(&btnLogout, h.handleLogout)

	// Text messages and uploads
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handleIDFile)
	h.bot.Handle(tele.OnDocument, h.handleIDFile)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnLogin, h.handleLogin)
	h.bot.Handle(&btnRegister, h.handleRegister)
	h.bot.Handle(&btnFeedback, h.handleFeedback)
	h.bot.Handle(&btnRoomBack, h.handleRoomBack)
	h.bot.Handle(&tele.Btn{Unique: uniqueRoom}, h.handleRoomDetail)
	h.bot.Handle(&tele.Btn{Unique: uniqueOrder}, h.handleOrder)
	h.bot.Handle(&tele.Btn{Unique: uniqueContact}, h.handleContactOpen)
	h.bot.Handle(&tele.Btn{Unique: uniqueIDType}, h.handleIDType)
	h.bot.Handle(&tele.Btn{Unique: uniqueMethod}, h.handleMethod)
	h.bot.Handle(&tele.Btn{Unique: uniqueContactVia}, h.handleContactMethod)
	h.bot.Handle(&btnWizardNext, h.handleWizardNext)
	h.bot.Handle(&btnWizardBack, h.handleWizardBack)
	h.bot.Handle(&btnWizardConfirm, h.handleWizardNext)
	h.bot.Handle(&btnWizardTerms, h.handleWizardTerms)
	h.bot.Handle(&btnWizardPay, h.handleWizardPay)
	h.bot.Handle(&btnWizardClose, h.handleWizardClose)
	h.bot.Handle(&btnContactCancel, h.handleContactCancel)

	// Generic callback handler for anything that did not match a unique
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) slot(chatID int64) *chatSlot {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()

	s, ok := h.states[chatID]
	if !ok {
		s = &chatSlot{state: domain.NewChatState()}
		h.states[chatID] = s
	}
	return s
}

// withChat runs fn with exclusive access to the chat's state
func (h *Handler) withChat(chatID int64, fn func(st *domain.ChatState) error) error {
	s := h.slot(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// IsLoggedIn reports whether the chat has logged in
func (h *Handler) IsLoggedIn(chatID int64) bool {
	var loggedIn bool
	_ = h.withChat(chatID, func(st *domain.ChatState) error {
		loggedIn = st.App.User.LoggedIn
		return nil
	})
	return loggedIn
}

// Inline keyboard buttons
var (
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Beranda",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Batal",
	}
	btnLogin = tele.Btn{
		Unique: "login",
		Text:   "🔑 Login",
	}
	btnRegister = tele.Btn{
		Unique: "register",
		Text:   "📝 Registrasi",
	}
	btnFeedback = tele.Btn{
		Unique: "feedback",
		Text:   "💬 Feedback",
	}
	btnDashboard = tele.Btn{
		Unique: "dashboard",
		Text:   "⚙️ Kelola Kamar",
	}
	btnLogout = tele.Btn{
		Unique: "logout",
		Text:   "🚪 Logout",
	}
	btnRoomBack = tele.Btn{
		Unique: "room_back",
		Text:   "◀️ Kembali ke Daftar Kamar",
	}
	btnWizardNext = tele.Btn{
		Unique: "wz_next",
		Text:   "Lanjutkan ▶️",
	}
	btnWizardBack = tele.Btn{
		Unique: "wz_back",
		Text:   "◀️ Kembali",
	}
	btnWizardConfirm = tele.Btn{
		Unique: "wz_confirm",
		Text:   "Konfirmasi ▶️",
	}
	btnWizardTerms = tele.Btn{
		Unique: "wz_terms",
		Text:   "Setujui syarat dan ketentuan",
	}
	btnWizardPay = tele.Btn{
		Unique: "wz_pay",
		Text:   "💳 Bayar Sekarang",
	}
	btnWizardClose = tele.Btn{
		Unique: "wz_close",
		Text:   "✖️ Tutup",
	}
	btnContactCancel = tele.Btn{
		Unique: "ct_cancel",
		Text:   "Batal",
	}
)
