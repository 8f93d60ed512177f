package usecase

import "context"

const (
	// ResetRequestedMessage is answered for every forgot-password request so that
	// the response never reveals whether an account exists.
	ResetRequestedMessage = "If an account exists for that email, you’ll receive a password reset link shortly."

	// ResetCompletedMessage is answered after a successful password reset.
	ResetCompletedMessage = "Password reset successful. Please log in again."
)

// RequestResetInput carries the email a reset link should be sent to.
type RequestResetInput struct {
	Email string
}

// RequestResetOutput carries the generic confirmation message.
type RequestResetOutput struct {
	Message string
}

// ConsumeResetInput carries the raw token from the emailed link and the new password.
type ConsumeResetInput struct {
	Token       string
	NewPassword string
}

// ConsumeResetOutput carries the confirmation message.
type ConsumeResetOutput struct {
	Message string
}

// PasswordResetUsecase defines the forgot/reset password flow.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) (*RequestResetOutput, error)
	ConsumeReset(ctx context.Context, input *ConsumeResetInput) (*ConsumeResetOutput, error)
}
