package service

import (
	"mygriya/internal/domain"

	"github.com/cockroachdb/errors"
)

// RejectionNotice maps a rejected transition to the message shown to the
// user. Unknown errors get a generic notice.
func RejectionNotice(err error) domain.Notice {
	title := "Terjadi kesalahan. Coba lagi nanti."

	switch {
	case errors.Is(err, domain.ErrVerificationIncomplete):
		title = "Lengkapi data verifikasi"
	case errors.Is(err, domain.ErrTermsNotAccepted):
		title = "Anda harus menyetujui syarat dan ketentuan"
	case errors.Is(err, domain.ErrRoomUnavailable):
		title = "Kamar tidak tersedia"
	case errors.Is(err, domain.ErrRoomNotFound):
		title = "Kamar tidak ditemukan"
	case errors.Is(err, domain.ErrWizardClosed), errors.Is(err, domain.ErrDialogClosed):
		title = "Sesi sudah berakhir. Buka kembali dari halaman kamar."
	case errors.Is(err, domain.ErrWrongStep), errors.Is(err, domain.ErrNoPreviousStep):
		title = "Aksi tidak tersedia pada langkah ini"
	case errors.Is(err, domain.ErrUnknownIDType),
		errors.Is(err, domain.ErrUnknownPaymentMethod),
		errors.Is(err, domain.ErrUnknownContactMethod):
		title = "Pilihan tidak dikenal"
	case errors.Is(err, domain.ErrEmptyMessage):
		title = "Pesan tidak boleh kosong"
	case errors.Is(err, ErrMissingCredentials):
		title = "Email dan password wajib diisi"
	case errors.Is(err, ErrIncompleteRegistration):
		title = "Lengkapi nama, email, dan password"
	case errors.Is(err, ErrIncompleteFeedback):
		title = "Lengkapi semua kolom feedback"
	case errors.Is(err, ErrNoRentedRoom):
		title = "Anda belum menyewa kamar"
	}

	return domain.Notice{Kind: domain.NoticeError, Title: title}
}
