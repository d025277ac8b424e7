package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// PaymentStep is a stage of the payment wizard
type PaymentStep string

const (
	StepVerification   PaymentStep = "verification"
	StepPaymentMethod  PaymentStep = "payment-method"
	StepPaymentDetails PaymentStep = "payment-details"
	StepConfirmation   PaymentStep = "confirmation"
)

// Steps lists the wizard stages in order. Transitions only move to a
// neighbour in this list.
var Steps = []PaymentStep{
	StepVerification,
	StepPaymentMethod,
	StepPaymentDetails,
	StepConfirmation,
}

// Index returns the zero-based position of the step, or -1
func (s PaymentStep) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Title is the short label under the progress indicator
func (s PaymentStep) Title() string {
	switch s {
	case StepVerification:
		return "Verifikasi"
	case StepPaymentMethod:
		return "Metode"
	case StepPaymentDetails:
		return "Pembayaran"
	case StepConfirmation:
		return "Konfirmasi"
	}
	return string(s)
}

// IDType is the identity document kind
type IDType string

const (
	IDTypeKTP IDType = "ktp"
	IDTypeKTM IDType = "ktm"
	IDTypeSIM IDType = "sim"
)

// IDTypes lists the accepted documents in display order
var IDTypes = []IDType{IDTypeKTP, IDTypeKTM, IDTypeSIM}

// ParseIDType validates an identity document kind
func ParseIDType(s string) (IDType, error) {
	t := IDType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range IDTypes {
		if t == known {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownIDType, "%q", s)
}

// Label is the upper-case document name ("KTP")
func (t IDType) Label() string {
	return strings.ToUpper(string(t))
}

// PaymentMethod is the simulated payment channel
type PaymentMethod string

const (
	MethodQRIS           PaymentMethod = "qris"
	MethodBankTransfer   PaymentMethod = "bank-transfer"
	MethodVirtualAccount PaymentMethod = "virtual-account"
)

// PaymentMethods lists the channels in display order
var PaymentMethods = []PaymentMethod{MethodQRIS, MethodBankTransfer, MethodVirtualAccount}

// ParsePaymentMethod validates a payment channel
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PaymentMethods {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownPaymentMethod, "%q", s)
}

// Label returns the display name of the channel
func (m PaymentMethod) Label() string {
	switch m {
	case MethodQRIS:
		return "QRIS"
	case MethodBankTransfer:
		return "Transfer Bank"
	case MethodVirtualAccount:
		return "Virtual Account"
	}
	return string(m)
}

// Hint is the one-line description shown on the method screen
func (m PaymentMethod) Hint() string {
	switch m {
	case MethodQRIS:
		return "Bayar dengan scan QR code"
	case MethodBankTransfer:
		return "BCA, BNI, Mandiri, BRI"
	case MethodVirtualAccount:
		return "Bayar melalui VA"
	}
	return ""
}

// WizardSession is the data collected across the four steps
type WizardSession struct {
	ID            string
	RoomID        string
	RoomName      string
	Price         int64
	Step          PaymentStep
	IDType        IDType
	IDNumber      string
	IDFile        string // reference to the uploaded document, e.g. a Telegram file id
	Method        PaymentMethod
	AgreedToTerms bool
}

func newWizardSession(room Room) WizardSession {
	return WizardSession{
		ID:       uuid.NewString(),
		RoomID:   room.ID,
		RoomName: room.Name,
		Price:    room.Price,
		Step:     StepVerification,
		IDType:   IDTypeKTP,
		Method:   MethodQRIS,
	}
}

// reset returns the session to its initial values, keeping the room
func (s *WizardSession) reset() {
	s.Step = StepVerification
	s.IDType = IDTypeKTP
	s.IDNumber = ""
	s.IDFile = ""
	s.Method = MethodQRIS
	s.AgreedToTerms = false
}

// PaymentWizard drives one wizard session at a time. It is not safe for
// concurrent use; callers serialize access per chat.
type PaymentWizard struct {
	session   WizardSession
	open      bool
	onSuccess func(roomID string)
}

// NewPaymentWizard creates a closed wizard. onSuccess is called once per
// confirmed payment with the room id.
func NewPaymentWizard(onSuccess func(roomID string)) *PaymentWizard {
	return &PaymentWizard{onSuccess: onSuccess}
}

// Open starts a fresh session for the room, discarding any previous one
func (w *PaymentWizard) Open(room Room) error {
	if !room.Available {
		return errors.Wrapf(ErrRoomUnavailable, "room %s", room.ID)
	}
	w.session = newWizardSession(room)
	w.open = true
	return nil
}

// IsOpen reports whether a session is active
func (w *PaymentWizard) IsOpen() bool {
	return w.open
}

// Session returns a copy of the current session
func (w *PaymentWizard) Session() WizardSession {
	return w.session
}

// Step returns the current step
func (w *PaymentWizard) Step() PaymentStep {
	return w.session.Step
}

// Close discards the session without side effects
func (w *PaymentWizard) Close() {
	w.session.reset()
	w.open = false
}

func (w *PaymentWizard) requireStep(step PaymentStep) error {
	if !w.open {
		return ErrWizardClosed
	}
	if w.session.Step != step {
		return errors.Wrapf(ErrWrongStep, "at %s, want %s", w.session.Step, step)
	}
	return nil
}

// SelectIDType picks the identity document kind
func (w *PaymentWizard) SelectIDType(t IDType) error {
	if err := w.requireStep(StepVerification); err != nil {
		return err
	}
	if _, err := ParseIDType(string(t)); err != nil {
		return err
	}
	w.session.IDType = t
	return nil
}

// SetIDNumber stores the identity number as typed
func (w *PaymentWizard) SetIDNumber(number string) error {
	if err := w.requireStep(StepVerification); err != nil {
		return err
	}
	w.session.IDNumber = strings.TrimSpace(number)
	return nil
}

// AttachIDFile stores a reference to the uploaded identity document
func (w *PaymentWizard) AttachIDFile(ref string) error {
	if err := w.requireStep(StepVerification); err != nil {
		return err
	}
	w.session.IDFile = strings.TrimSpace(ref)
	return nil
}

// SelectMethod picks the payment channel
func (w *PaymentWizard) SelectMethod(m PaymentMethod) error {
	if err := w.requireStep(StepPaymentMethod); err != nil {
		return err
	}
	if _, err := ParsePaymentMethod(string(m)); err != nil {
		return err
	}
	w.session.Method = m
	return nil
}

// SetAgreedToTerms sets the terms checkbox
func (w *PaymentWizard) SetAgreedToTerms(agreed bool) error {
	if err := w.requireStep(StepConfirmation); err != nil {
		return err
	}
	w.session.AgreedToTerms = agreed
	return nil
}

// Next advances one step. Leaving verification requires both the identity
// number and the identity file; on rejection nothing changes.
func (w *PaymentWizard) Next() error {
	if !w.open {
		return ErrWizardClosed
	}

	switch w.session.Step {
	case StepVerification:
		if w.session.IDNumber == "" || w.session.IDFile == "" {
			return ErrVerificationIncomplete
		}
		w.session.Step = StepPaymentMethod
	case StepPaymentMethod:
		w.session.Step = StepPaymentDetails
	case StepPaymentDetails:
		w.session.Step = StepConfirmation
	default:
		return errors.Wrapf(ErrWrongStep, "cannot advance from %s", w.session.Step)
	}
	return nil
}

// Back retreats one step
func (w *PaymentWizard) Back() error {
	if !w.open {
		return ErrWizardClosed
	}

	i := w.session.Step.Index()
	if i <= 0 {
		return ErrNoPreviousStep
	}
	w.session.Step = Steps[i-1]
	return nil
}

// Confirm completes the payment. It requires the confirmation step and
// accepted terms; on success the callback fires once with the room id,
// the session is reset and the wizard closes.
func (w *PaymentWizard) Confirm() error {
	if err := w.requireStep(StepConfirmation); err != nil {
		return err
	}
	if !w.session.AgreedToTerms {
		return ErrTermsNotAccepted
	}

	roomID := w.session.RoomID
	w.Close()

	if w.onSuccess != nil {
		w.onSuccess(roomID)
	}
	return nil
}

// StepState is the rendering state of one progress marker
type StepState int

const (
	StepPending StepState = iota
	StepCurrent
	StepDone
)

// StepMarker is one entry of the progress indicator
type StepMarker struct {
	Number int
	Step   PaymentStep
	State  StepState
}

// Indicator returns the four progress markers for the current step
func (w *PaymentWizard) Indicator() []StepMarker {
	current := w.session.Step.Index()
	markers := make([]StepMarker, len(Steps))
	for i, step := range Steps {
		state := StepPending
		switch {
		case i < current:
			state = StepDone
		case i == current:
			state = StepCurrent
		}
		markers[i] = StepMarker{Number: i + 1, Step: step, State: state}
	}
	return markers
}

// Mock payee details shown on the payment-details step
const (
	PayeeBank          = "BCA"
	PayeeAccountNumber = "1234567890"
	PayeeAccountName   = "MyGriya Management"
	PayeeVirtualAcct   = "8012345678901234"
)

// PaymentInstructions returns the payment-details lines for a channel
func PaymentInstructions(m PaymentMethod, price int64) []string {
	total := "Total Bayar: " + FormatRupiah(price)
	switch m {
	case MethodBankTransfer:
		return []string{
			"Bank: " + PayeeBank,
			"Nomor Rekening: " + PayeeAccountNumber,
			"Atas Nama: " + PayeeAccountName,
			total,
		}
	case MethodVirtualAccount:
		return []string{
			"Virtual Account: " + PayeeVirtualAcct,
			total,
		}
	default:
		return []string{
			"Scan QR code dengan aplikasi pembayaran Anda",
			total,
		}
	}
}
