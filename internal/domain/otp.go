package domain

// OTP purposes. Each purpose gets its own cache slot per email, so an
// account-activation code can never satisfy a password-reset check.
const (
	PurposeAccountActivation = "account_activation"
	PurposePasswordReset     = "password_reset"
)

// OTPEntry is a transient one-time code keyed by (email, purpose).
// PK: email, SK: purpose. ExpiresAt is a Unix timestamp used as DynamoDB TTL.
// Attempts counts failed verification tries; the entry is invalidated once
// the limit is exceeded so a code cannot be brute-forced within its TTL.
type OTPEntry struct {
	Email     string `json:"email" dynamodbav:"email"`
	Purpose   string `json:"purpose" dynamodbav:"purpose"`
	Code      string `json:"code" dynamodbav:"code"`
	Attempts  int    `json:"attempts" dynamodbav:"attempts"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
}
