package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactForm_Defaults(t *testing.T) {
	f := NewContactForm("Kamar A1")

	assert.Equal(t, ContactWhatsApp, f.Method)
	assert.Empty(t, f.Message)
}

func TestContactForm_SubmitBlank(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		f := NewContactForm("Kamar A1")
		f.Message = msg

		_, err := f.Submit()

		assert.True(t, errors.Is(err, ErrEmptyMessage))
		assert.Equal(t, msg, f.Message)
	}
}

func TestContactForm_Submit(t *testing.T) {
	f := NewContactForm("Kamar B2")
	require.NoError(t, f.SelectMethod(ContactEmail))
	f.Message = "  Apakah kamar masih tersedia?  "

	sub, err := f.Submit()

	require.NoError(t, err)
	assert.Equal(t, "Apakah kamar masih tersedia?", sub.Message)
	assert.Equal(t, ContactEmail, sub.Method)
	assert.Equal(t, NoticeSuccess, sub.Sent.Kind)
	assert.Equal(t, "Pesan berhasil dikirim!", sub.Sent.Title)
	assert.Equal(t, NoticeInfo, sub.Reply.Kind)
	assert.Contains(t, sub.Reply.Description, "Kamar B2 sedang dalam proses verifikasi")
	assert.Empty(t, f.Message)
}

func TestContactForm_SelectUnknownMethod(t *testing.T) {
	f := NewContactForm("Kamar A1")

	err := f.SelectMethod("fax")

	assert.True(t, errors.Is(err, ErrUnknownContactMethod))
	assert.Equal(t, ContactWhatsApp, f.Method)
}
