package entity

// TokenPurpose scopes what a signed token may be used for.
type TokenPurpose string

const (
	PurposeAccess TokenPurpose = "access"
	PurposeVerify TokenPurpose = "verify"
	PurposeReset  TokenPurpose = "reset"
)

// IsValid checks if the purpose is one the service issues.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case PurposeAccess, PurposeVerify, PurposeReset:
		return true
	default:
		return false
	}
}

// String returns the string representation of the TokenPurpose.
func (p TokenPurpose) String() string {
	return string(p)
}
