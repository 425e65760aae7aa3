package auth

// CodeVerifier checks the one-time code presented for a mobile number.
// A real OTP provider slots in behind this without touching the login flow.
type CodeVerifier interface {
	Verify(mobile, code string) bool
}

// FixedCodeVerifier accepts a single hardcoded code for any mobile number.
// Demo stand-in for real OTP delivery and verification.
type FixedCodeVerifier struct {
	Code string
}

func (v FixedCodeVerifier) Verify(_, code string) bool {
	return code == v.Code
}
