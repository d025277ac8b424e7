package domain

import (
	"fmt"
	"time"
)

// PaymentStatus is the state of a mock bill or payment
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// Label returns the Indonesian badge text
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPaid:
		return "Lunas"
	case PaymentPending:
		return "Pending"
	case PaymentOverdue:
		return "Terlambat"
	}
	return string(s)
}

// PaymentRecord is one illustrative entry of the payment history. It is
// not derived from wizard input.
type PaymentRecord struct {
	ID     string
	Date   time.Time
	Amount int64
	Status PaymentStatus
	Method string
}

// Bill is the current month's charge
type Bill struct {
	DueDate time.Time
	Amount  int64
	Status  PaymentStatus
}

// DueLabel renders the countdown shown under the bill
func (b Bill) DueLabel(now time.Time) string {
	if !b.DueDate.After(now) {
		return "Jatuh tempo terlewat"
	}
	return fmt.Sprintf("%d hari lagi", DaysUntil(now, b.DueDate))
}

// Dashboard is the tenant view for a rented room
type Dashboard struct {
	Room    Room
	Email   string
	Bill    Bill
	History []PaymentRecord
}
