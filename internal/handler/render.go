package handler

import (
	"fmt"
	"strings"
	"time"

	"mygriya/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Callback uniques of dynamic buttons
const (
	uniqueRoom       = "room"
	uniqueOrder      = "order"
	uniqueContact    = "contact"
	uniqueIDType     = "wz_idtype"
	uniqueMethod     = "wz_method"
	uniqueContactVia = "ct_method"
)

func checkbox(on bool) string {
	if on {
		return "☑️"
	}
	return "⬜"
}

func selected(on bool, label string) string {
	if on {
		return "● " + label
	}
	return label
}

// homeScreen renders the room list and the navigation for the user
func homeScreen(rooms []domain.Room, user domain.UserState) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("🏠 MyGriya\n")
	if user.LoggedIn {
		fmt.Fprintf(&b, "Halo, %s\n", user.Name)
	}
	b.WriteString("\nDaftar Kamar\n")

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, room := range rooms {
		fmt.Fprintf(&b, "\n%s · %s / bulan · %s\n%s\n",
			room.Name, domain.FormatRupiah(room.Price), room.ListingLabel(), room.Description)
		rows = append(rows, markup.Row(markup.Data("Lihat Detail "+room.Name, uniqueRoom, room.ID)))
	}

	rows = append(rows, navRows(markup, user)...)
	markup.Inline(rows...)
	return b.String(), markup
}

// navRows mirrors the sidebar: login/registration for guests, the
// dashboard for tenants, feedback for everyone
func navRows(markup *tele.ReplyMarkup, user domain.UserState) []tele.Row {
	var rows []tele.Row
	if !user.LoggedIn {
		rows = append(rows, markup.Row(btnLogin, btnRegister))
	} else if user.HasRoom() {
		rows = append(rows, markup.Row(btnDashboard))
	}
	rows = append(rows, markup.Row(btnFeedback))
	if user.LoggedIn {
		rows = append(rows, markup.Row(btnLogout))
	}
	return rows
}

// roomDetailScreen renders one room with its actions
func roomDetailScreen(room domain.Room) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "🛏️ %s\n%s / bulan · %s\n\n", room.Name, domain.FormatRupiah(room.Price), room.StatusLabel())
	fmt.Fprintf(&b, "Luas Kamar: %d m²\nLantai: Lantai %d\n\n", room.Size, room.Floor)
	fmt.Fprintf(&b, "Deskripsi\n%s\n\nFasilitas\n", room.Description)
	for _, f := range room.Facilities {
		b.WriteString(f.String() + "\n")
	}

	markup := &tele.ReplyMarkup{}
	orderText := "Pesan Kamar"
	if !room.Available {
		orderText = "Kamar Tidak Tersedia"
	}
	markup.Inline(
		markup.Row(markup.Data(orderText, uniqueOrder, room.ID)),
		markup.Row(markup.Data("Hubungi Admin", uniqueContact, room.ID)),
		markup.Row(btnRoomBack),
	)
	return b.String(), markup
}

// progressLine renders the four-step indicator
func progressLine(markers []domain.StepMarker) string {
	parts := make([]string, len(markers))
	for i, m := range markers {
		var mark string
		switch m.State {
		case domain.StepDone:
			mark = "✅"
		case domain.StepCurrent:
			mark = fmt.Sprintf("[%d]", m.Number)
		default:
			mark = fmt.Sprintf("%d", m.Number)
		}
		parts[i] = mark + " " + m.Step.Title()
	}
	return strings.Join(parts, " → ")
}

// wizardScreen renders the current step of the payment wizard
func wizardScreen(w *domain.PaymentWizard) (string, *tele.ReplyMarkup) {
	s := w.Session()
	markup := &tele.ReplyMarkup{}

	var b strings.Builder
	b.WriteString("💳 Pembayaran Kamar\n")
	b.WriteString(progressLine(w.Indicator()) + "\n\n")

	var rows []tele.Row

	switch s.Step {
	case domain.StepVerification:
		fmt.Fprintf(&b, "Detail Kamar:\n%s\n%s / bulan\n\n", s.RoomName, domain.FormatRupiah(s.Price))
		fmt.Fprintf(&b, "Jenis Identitas: %s\n", s.IDType.Label())
		number := s.IDNumber
		if number == "" {
			number = "belum diisi"
		}
		fmt.Fprintf(&b, "Nomor Identitas: %s\n", number)
		file := "belum diunggah"
		if s.IDFile != "" {
			file = "terunggah"
		}
		fmt.Fprintf(&b, "Foto Identitas: %s\n\n", file)
		fmt.Fprintf(&b, "Kirim nomor %s sebagai pesan, lalu kirim foto identitas (JPG, PNG, maks 5MB).", s.IDType.Label())

		typeRow := tele.Row{}
		for _, t := range domain.IDTypes {
			typeRow = append(typeRow, markup.Data(selected(t == s.IDType, t.Label()), uniqueIDType, string(t)))
		}
		rows = append(rows, typeRow, markup.Row(btnWizardNext))

	case domain.StepPaymentMethod:
		b.WriteString("Pilih Metode Pembayaran\n")
		for _, m := range domain.PaymentMethods {
			fmt.Fprintf(&b, "\n%s\n%s\n", selected(m == s.Method, m.Label()), m.Hint())
			rows = append(rows, markup.Row(markup.Data(selected(m == s.Method, m.Label()), uniqueMethod, string(m))))
		}
		rows = append(rows, markup.Row(btnWizardBack, btnWizardNext))

	case domain.StepPaymentDetails:
		b.WriteString("Detail Pembayaran\n\n")
		b.WriteString(strings.Join(domain.PaymentInstructions(s.Method, s.Price), "\n"))
		rows = append(rows, markup.Row(btnWizardBack, btnWizardConfirm))

	case domain.StepConfirmation:
		b.WriteString("Konfirmasi Pembayaran\n\n")
		fmt.Fprintf(&b, "Kamar: %s\n", s.RoomName)
		fmt.Fprintf(&b, "Harga: %s / bulan\n", domain.FormatRupiah(s.Price))
		fmt.Fprintf(&b, "Metode Pembayaran: %s\n", s.Method.Label())
		fmt.Fprintf(&b, "Verifikasi ID: %s - %s\n\n", s.IDType.Label(), s.IDNumber)
		fmt.Fprintf(&b, "%s Saya menyetujui syarat dan ketentuan yang berlaku serta bertanggung jawab atas data yang saya berikan",
			checkbox(s.AgreedToTerms))

		rows = append(rows,
			markup.Row(markup.Data(checkbox(s.AgreedToTerms)+" Setujui syarat dan ketentuan", btnWizardTerms.Unique)),
			markup.Row(btnWizardBack, btnWizardPay),
		)
	}

	rows = append(rows, markup.Row(btnWizardClose))
	markup.Inline(rows...)
	return b.String(), markup
}

// contactScreen renders the contact-admin dialog
func contactScreen(form *domain.ContactForm) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("💬 Hubungi Admin\n\n")
	fmt.Fprintf(&b, "Kamar yang ditanyakan:\n%s\n\n", form.RoomName)
	fmt.Fprintf(&b, "Metode Kontak: %s\n\n", form.Method.Label())
	b.WriteString("Tulis pesan Anda, misalnya: Saya ingin menanyakan ketersediaan kamar...")

	markup := &tele.ReplyMarkup{}
	methods := tele.Row{}
	for _, m := range domain.ContactMethods {
		methods = append(methods, markup.Data(selected(m == form.Method, m.Label()), uniqueContactVia, string(m)))
	}
	markup.Inline(methods, markup.Row(btnContactCancel))
	return b.String(), markup
}

// dashboardScreen renders the tenant dashboard
func dashboardScreen(d *domain.Dashboard, now time.Time) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	fmt.Fprintf(&b, "🏠 Kamar Anda\n%s\n%s\n\n", d.Room.Name, d.Email)

	b.WriteString("Tagihan Bulan Ini\n")
	fmt.Fprintf(&b, "Jatuh Tempo: %s\n", domain.FormatDate(d.Bill.DueDate))
	fmt.Fprintf(&b, "Total Tagihan: %s\n", domain.FormatRupiah(d.Bill.Amount))
	fmt.Fprintf(&b, "Status: %s (%s)\n\n", d.Bill.Status.Label(), d.Bill.DueLabel(now))

	b.WriteString("Fasilitas yang Tersedia\n")
	for _, f := range d.Room.Facilities {
		b.WriteString(f.String() + "\n")
	}
	b.WriteString("ℹ️ Jika ada fasilitas yang rusak atau perlu perbaikan, silakan hubungi admin melalui halaman Feedback\n\n")

	b.WriteString("Riwayat Pembayaran\n")
	if len(d.History) == 0 {
		b.WriteString("Belum ada riwayat pembayaran\n")
	}
	for _, p := range d.History {
		fmt.Fprintf(&b, "%s · %s · %s · %s\n",
			domain.FormatDate(p.Date), domain.FormatRupiah(p.Amount), p.Method, p.Status.Label())
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnFeedback),
		markup.Row(btnMainMenu),
	)
	return b.String(), markup
}

// cancelMarkup is attached to text prompts
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}

// noticeText joins queued notices in front of a screen
func noticeText(notices []domain.Notice, screen string) string {
	if len(notices) == 0 {
		return screen
	}
	parts := make([]string, 0, len(notices)+1)
	for _, n := range notices {
		parts = append(parts, n.String())
	}
	parts = append(parts, screen)
	return strings.Join(parts, "\n\n")
}
