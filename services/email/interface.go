package email

// Sender delivers verification codes to users. The workflow treats delivery
// as an opaque external call; implementations decide the transport.
type Sender interface {
	// SendVerificationEmail delivers the initial verification code.
	SendVerificationEmail(to, code string) error
	// SendResendEmail delivers a re-issued verification code.
	SendResendEmail(to, code string) error
}
