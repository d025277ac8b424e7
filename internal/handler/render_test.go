package handler

import (
	"errors"
	"strings"
	"testing"
	"time"

	"mygriya/internal/domain"
	"mygriya/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonTexts(t *testing.T, reply testutil.Reply) []string {
	t.Helper()
	require.NotNil(t, reply.Markup)
	var out []string
	for _, row := range reply.Markup.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.Text)
		}
	}
	return out
}

func TestNavRows(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.UserState
		expected []string
	}{
		{
			name:     "guest",
			user:     domain.UserState{},
			expected: []string{btnLogin.Text, btnRegister.Text, btnFeedback.Text},
		},
		{
			name:     "tenant without room",
			user:     domain.UserState{LoggedIn: true, Name: "a"},
			expected: []string{btnFeedback.Text, btnLogout.Text},
		},
		{
			name:     "tenant with room",
			user:     domain.UserState{LoggedIn: true, Name: "a", RentedRoomID: "1"},
			expected: []string{btnDashboard.Text, btnFeedback.Text, btnLogout.Text},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, markup := homeScreen(nil, tt.user)
			assert.Equal(t, tt.expected, buttonTexts(t, testutil.Reply{Markup: markup}))
		})
	}
}

func TestRoomDetailScreen_FullRoom(t *testing.T) {
	room := testutil.NewTestRoom("3", "Kamar C3", 1500000, false)

	text, markup := roomDetailScreen(room)

	assert.Contains(t, text, "Tidak Tersedia")
	assert.Contains(t, text, "🛏️ Lemari")
	assert.Contains(t, buttonTexts(t, testutil.Reply{Markup: markup}), "Kamar Tidak Tersedia")
}

func TestWizardScreen_PaymentDetails(t *testing.T) {
	room := testutil.NewTestRoom("1", "Kamar A1", 1000000, true)
	w := domain.NewPaymentWizard(nil)
	require.NoError(t, w.Open(room))
	require.NoError(t, w.SetIDNumber("1234567890"))
	require.NoError(t, w.AttachIDFile("photo-1"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectMethod(domain.MethodBankTransfer))
	require.NoError(t, w.Next())

	text, _ := wizardScreen(w)

	assert.Contains(t, text, "✅ Verifikasi")
	assert.Contains(t, text, "[3]")
	assert.Contains(t, text, domain.PayeeAccountNumber)
	assert.Contains(t, text, domain.PayeeAccountName)
}

func TestDashboardScreen(t *testing.T) {
	now := time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	room := testutil.NewTestRoom("1", "Kamar A1", 1000000, true)
	d := &domain.Dashboard{
		Room:  room,
		Email: "a@b.com",
		Bill: domain.Bill{
			DueDate: time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
			Amount:  1000000,
			Status:  domain.PaymentPending,
		},
		History: []domain.PaymentRecord{
			{ID: "202501", Date: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Amount: 1000000, Status: domain.PaymentPaid, Method: "QRIS"},
		},
	}

	text, _ := dashboardScreen(d, now)

	assert.Contains(t, text, "Jatuh Tempo: 15 Februari 2025")
	assert.Contains(t, text, "Status: Pending (26 hari lagi)")
	assert.Contains(t, text, "15 Januari 2025 · Rp 1.000.000 · QRIS · Lunas")
}

func TestNoticeText(t *testing.T) {
	assert.Equal(t, "screen", noticeText(nil, "screen"))

	got := noticeText([]domain.Notice{{Kind: domain.NoticeSuccess, Title: "Login berhasil!"}}, "screen")
	assert.True(t, strings.HasPrefix(got, "✅ Login berhasil!"))
	assert.True(t, strings.HasSuffix(got, "\n\nscreen"))
}

func TestShow_EditFallback(t *testing.T) {
	h, _ := newTestHandler(t, time.Second)

	t.Run("not modified is acknowledged", func(t *testing.T) {
		c := testutil.NewCallbackContext(testChat, btnMainMenu.Unique, "")
		c.EditErr = errors.New("telegram: message is not modified (400)")

		require.NoError(t, h.show(c, "text", nil))

		assert.Empty(t, c.Replies)
		assert.Len(t, c.Responses, 1)
	})

	t.Run("other errors send a new message", func(t *testing.T) {
		c := testutil.NewCallbackContext(testChat, btnMainMenu.Unique, "")
		c.EditErr = errors.New("telegram: message can't be edited (400)")

		require.NoError(t, h.show(c, "text", nil))

		require.Len(t, c.Replies, 1)
		assert.False(t, c.Replies[0].Edited)
		assert.Equal(t, "text", c.Replies[0].Text)
	})
}

func TestHandleCallback_Fallback(t *testing.T) {
	h, _ := newTestHandler(t, time.Second)
	c := testutil.NewCallbackContext(testChat, "", "\froom|1")

	require.NoError(t, h.handleCallback(c))

	assert.Contains(t, c.LastReply().Text, "Kamar A1")
	assert.Equal(t, "1", chatState(t, h, testChat).App.SelectedRoomID)
}
