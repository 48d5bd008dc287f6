package account

// ErrAccountNotFound indicates missing account
type ErrAccountNotFound struct {
	Number string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.Number
}

// Is implements the errors.Is interface for ErrAccountNotFound
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	// An empty target number matches any missing account
	if t.Number == "" {
		return true
	}
	return e.Number == t.Number
}

// IdentityField names an owner field that must be unique across accounts
type IdentityField string

const (
	IdentityNationalID IdentityField = "national_id"
	IdentityEmail      IdentityField = "email"
)

// ErrDuplicateIdentity indicates a national ID or email already used by another account
type ErrDuplicateIdentity struct {
	Field IdentityField
	Value string
}

func (e ErrDuplicateIdentity) Error() string {
	if e.Field == IdentityEmail {
		return "an account with this email already exists"
	}
	return "an account with this national ID already exists"
}

// Is implements the errors.Is interface for ErrDuplicateIdentity
func (e ErrDuplicateIdentity) Is(target error) bool {
	t, ok := target.(ErrDuplicateIdentity)
	if !ok {
		return false
	}
	if t.Field == "" {
		return true
	}
	return e.Field == t.Field
}
