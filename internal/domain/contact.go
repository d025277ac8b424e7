package domain

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ContactMethod is how the admin should get back to the tenant
type ContactMethod string

const (
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
	ContactPhone    ContactMethod = "phone"
)

// ContactMethods lists the options in display order
var ContactMethods = []ContactMethod{ContactWhatsApp, ContactEmail, ContactPhone}

// ParseContactMethod validates a contact option
func ParseContactMethod(s string) (ContactMethod, error) {
	m := ContactMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ContactMethods {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownContactMethod, "%q", s)
}

// Label returns the display name
func (m ContactMethod) Label() string {
	switch m {
	case ContactWhatsApp:
		return "WhatsApp"
	case ContactEmail:
		return "Email"
	case ContactPhone:
		return "Telepon"
	}
	return string(m)
}

// ContactForm is the contact-admin dialog for one room
type ContactForm struct {
	RoomName string
	Message  string
	Method   ContactMethod
}

// NewContactForm opens an empty dialog for the room
func NewContactForm(roomName string) *ContactForm {
	return &ContactForm{RoomName: roomName, Method: ContactWhatsApp}
}

// SelectMethod picks the contact option
func (f *ContactForm) SelectMethod(m ContactMethod) error {
	if _, err := ParseContactMethod(string(m)); err != nil {
		return err
	}
	f.Method = m
	return nil
}

// ContactSubmission is the outcome of a successful submit
type ContactSubmission struct {
	RoomName string
	Message  string
	Method   ContactMethod
	Sent     Notice
	Reply    Notice
}

// Submit validates the message and clears the form. A blank message is
// rejected and the form is left untouched.
func (f *ContactForm) Submit() (ContactSubmission, error) {
	msg := strings.TrimSpace(f.Message)
	if msg == "" {
		return ContactSubmission{}, ErrEmptyMessage
	}

	sub := ContactSubmission{
		RoomName: f.RoomName,
		Message:  msg,
		Method:   f.Method,
		Sent: Notice{
			Kind:        NoticeSuccess,
			Title:       "Pesan berhasil dikirim!",
			Description: "Admin akan menghubungi Anda dalam 1x24 jam",
		},
		Reply: Notice{
			Kind:  NoticeInfo,
			Title: "Notifikasi dari Admin",
			Description: fmt.Sprintf(
				"%s sedang dalam proses verifikasi ketersediaan. Kami akan menghubungi Anda segera.",
				f.RoomName,
			),
		},
	}

	f.Message = ""
	return sub, nil
}
