package service

import (
	"time"

	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
)

// ErrNoRentedRoom is returned for users without a rented room
var ErrNoRentedRoom = errors.New("user has no rented room")

const billingDay = 15

var historyMethods = []string{"QRIS", "Transfer Bank", "Virtual Account"}

// DashboardService builds the tenant dashboard with mock billing
type DashboardService struct {
	catalog *CatalogService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(catalog *CatalogService) *DashboardService {
	return &DashboardService{catalog: catalog}
}

// Build returns the dashboard of the user's rented room as of now
func (s *DashboardService) Build(user domain.UserState, now time.Time) (*domain.Dashboard, error) {
	if !user.HasRoom() {
		return nil, ErrNoRentedRoom
	}

	room, err := s.catalog.Get(user.RentedRoomID)
	if err != nil {
		return nil, err
	}

	due := NextDueDate(now)

	history := make([]domain.PaymentRecord, 0, len(historyMethods))
	for i, method := range historyMethods {
		history = append(history, domain.PaymentRecord{
			ID:     due.AddDate(0, -(i + 1), 0).Format("200601"),
			Date:   due.AddDate(0, -(i + 1), 0),
			Amount: room.Price,
			Status: domain.PaymentPaid,
			Method: method,
		})
	}

	return &domain.Dashboard{
		Room:  room,
		Email: user.Email,
		Bill: domain.Bill{
			DueDate: due,
			Amount:  room.Price,
			Status:  domain.PaymentPending,
		},
		History: history,
	}, nil
}

// NextDueDate returns the billing day of the current month, or of the next
// month once it has passed
func NextDueDate(now time.Time) time.Time {
	due := time.Date(now.Year(), now.Month(), billingDay, 0, 0, 0, 0, now.Location())
	if now.Day() > billingDay {
		due = due.AddDate(0, 1, 0)
	}
	return due
}
