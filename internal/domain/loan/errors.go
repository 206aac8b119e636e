package loan

import "errors"

var (
	ErrNotFound               = errors.New("loan not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// application-time rejections
	ErrActiveLoanExists         = errors.New("applicant already has an active or pending loan")
	ErrAmountExceedsIncomeLimit = errors.New("loan amount exceeds 40% of annual income limit")
	ErrEmiExceedsIncomeLimit    = errors.New("estimated EMI exceeds 30% of monthly income")

	// approval-time rejections
	ErrProfileIncomplete = errors.New("applicant profile is incomplete")
	ErrCreditScoreTooLow = errors.New("credit score is below the approval threshold")
	ErrEmiTooHigh        = errors.New("EMI exceeds 30% of the applicant's monthly income")
)
