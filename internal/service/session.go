package service

import (
	"fmt"
	"strings"

	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	ErrMissingCredentials     = errors.New("email and password are required")
	ErrIncompleteRegistration = errors.New("name, email and password are required")
)

// Registration is the data of the sign-up form
type Registration struct {
	FullName string
	Email    string
	Password string
}

// SessionService handles login, registration, logout and rentals. There is
// no credential store: any non-empty login succeeds.
type SessionService struct {
	catalog *CatalogService
	logger  *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(catalog *CatalogService, logger *zap.Logger) *SessionService {
	return &SessionService{
		catalog: catalog,
		logger:  logger,
	}
}

// Login marks the chat as logged in
func (s *SessionService) Login(state domain.AppState, email, password string) (domain.AppState, domain.Notice, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return state, domain.Notice{}, ErrMissingCredentials
	}

	next := domain.Reduce(state, domain.LoggedIn{Email: email})

	s.logger.Info("User logged in", zap.String("name", next.User.Name))

	return next, domain.Notice{
		Kind:        domain.NoticeSuccess,
		Title:       "Login berhasil!",
		Description: "Selamat datang kembali, " + email,
	}, nil
}

// Register validates the sign-up form and routes to the login page.
// Nothing is stored.
func (s *SessionService) Register(state domain.AppState, reg Registration) (domain.AppState, domain.Notice, error) {
	if strings.TrimSpace(reg.FullName) == "" ||
		strings.TrimSpace(reg.Email) == "" ||
		strings.TrimSpace(reg.Password) == "" {
		return state, domain.Notice{}, ErrIncompleteRegistration
	}

	s.logger.Info("Registration accepted", zap.String("email", strings.TrimSpace(reg.Email)))

	return domain.Reduce(state, domain.Navigate{Page: domain.PageLogin}), domain.Notice{
		Kind:        domain.NoticeSuccess,
		Title:       "Registrasi berhasil!",
		Description: fmt.Sprintf("Akun untuk %s telah dibuat. Silakan login.", strings.TrimSpace(reg.FullName)),
	}, nil
}

// Logout resets the user and returns to the home page
func (s *SessionService) Logout(state domain.AppState) (domain.AppState, domain.Notice) {
	s.logger.Info("User logged out", zap.String("name", state.User.Name))

	return domain.Reduce(state, domain.LoggedOut{}), domain.Notice{
		Kind:  domain.NoticeSuccess,
		Title: "Logout berhasil",
	}
}

// CompleteRental attaches a paid room to the user. The room must exist in
// the catalog so the dashboard can always render it.
func (s *SessionService) CompleteRental(state domain.AppState, roomID string) (domain.AppState, domain.Notice, error) {
	if _, err := s.catalog.Get(roomID); err != nil {
		return state, domain.Notice{}, err
	}

	s.logger.Info("Room rented", zap.String("room_id", roomID), zap.String("name", state.User.Name))

	return domain.Reduce(state, domain.RoomRented{RoomID: roomID}), domain.Notice{
		Kind:        domain.NoticeSuccess,
		Title:       "Pembayaran berhasil!",
		Description: "Terima kasih telah melakukan pembayaran",
	}, nil
}
