package service

import (
	"testing"
	"time"

	"mygriya/internal/domain"
	"mygriya/internal/scheduler"
	"mygriya/internal/testutil"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactService(t *testing.T, delay time.Duration) *ContactService {
	t.Helper()
	s := scheduler.New(testutil.NewTestLogger())
	t.Cleanup(s.Stop)
	return NewContactService(s, delay, testutil.NewTestLogger())
}

func TestContactService_SubmitDeliversReply(t *testing.T) {
	svc := newContactService(t, 10*time.Millisecond)
	room := testutil.NewTestRoom("1", "Kamar A1", 1000000, true)
	replies := make(chan domain.Notice, 1)

	form := svc.Open(100, room)
	form.Message = "Apakah masih tersedia?"

	sub, err := svc.Submit(100, form, func(n domain.Notice) { replies <- n })
	require.NoError(t, err)
	assert.Equal(t, "Pesan berhasil dikirim!", sub.Sent.Title)
	assert.True(t, svc.ReplyPending(100))

	select {
	case n := <-replies:
		assert.Equal(t, "Notifikasi dari Admin", n.Title)
		assert.Contains(t, n.Description, "Kamar A1")
	case <-time.After(time.Second):
		t.Fatal("admin reply not delivered")
	}
}

func TestContactService_BlankMessage(t *testing.T) {
	svc := newContactService(t, time.Millisecond)
	room := testutil.NewTestRoom("1", "Kamar A1", 1000000, true)
	delivered := false

	form := svc.Open(100, room)
	form.Message = "   "

	_, err := svc.Submit(100, form, func(domain.Notice) { delivered = true })

	assert.True(t, errors.Is(err, domain.ErrEmptyMessage))
	assert.False(t, svc.ReplyPending(100))
	time.Sleep(20 * time.Millisecond)
	assert.False(t, delivered)
}

func TestContactService_ReopenCancelsPendingReply(t *testing.T) {
	svc := newContactService(t, 30*time.Millisecond)
	room := testutil.NewTestRoom("1", "Kamar A1", 1000000, true)
	replies := make(chan domain.Notice, 2)

	form := svc.Open(100, room)
	form.Message = "Halo"
	_, err := svc.Submit(100, form, func(n domain.Notice) { replies <- n })
	require.NoError(t, err)

	svc.Open(100, room)

	assert.False(t, svc.ReplyPending(100))
	select {
	case <-replies:
		t.Fatal("reply fired after the dialog was reopened")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestContactService_CancelReply(t *testing.T) {
	svc := newContactService(t, 30*time.Millisecond)
	room := testutil.NewTestRoom("2", "Kamar B2", 1200000, true)
	replies := make(chan domain.Notice, 1)

	form := svc.Open(7, room)
	form.Message = "Halo"
	_, err := svc.Submit(7, form, func(n domain.Notice) { replies <- n })
	require.NoError(t, err)

	svc.CancelReply(7)

	select {
	case <-replies:
		t.Fatal("reply fired after cancel")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestContactService_SubmitWithoutDialog(t *testing.T) {
	svc := newContactService(t, time.Millisecond)

	_, err := svc.Submit(1, nil, func(domain.Notice) {})

	assert.True(t, errors.Is(err, domain.ErrDialogClosed))
}
