package domain

import "github.com/cockroachdb/errors"

// Rejected transitions. None of them are fatal: the caller shows a notice
// and the state stays where it was.
var (
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomUnavailable        = errors.New("room is not available")
	ErrInvalidRoom            = errors.New("invalid room")
	ErrWizardClosed           = errors.New("payment wizard is not open")
	ErrWrongStep              = errors.New("action not allowed on this step")
	ErrNoPreviousStep         = errors.New("already on the first step")
	ErrVerificationIncomplete = errors.New("identity number and identity file are required")
	ErrTermsNotAccepted       = errors.New("terms and conditions must be accepted")
	ErrUnknownIDType          = errors.New("unknown identity document type")
	ErrUnknownPaymentMethod   = errors.New("unknown payment method")
	ErrEmptyMessage           = errors.New("message is empty")
	ErrUnknownContactMethod   = errors.New("unknown contact method")
	ErrDialogClosed           = errors.New("contact dialog is not open")
)
