package account

import (
	"errors"
	"math"
)

// Common errors
var (
	ErrInsufficientFunds  = errors.New("insufficient funds for this operation")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidPassword    = errors.New("invalid account password")
	ErrMissingOwnerFields = errors.New("name, national_id, birth_date, phone, email and password are all required")
	ErrNonZeroBalance     = errors.New("account can only be removed when its balance is zero")
	ErrBalanceOverflow    = errors.New("amount would exceed the maximum account balance")
)

// Owner holds the identity and credentials of an account holder
type Owner struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// complete reports whether every owner field is filled in
func (o Owner) complete() bool {
	return o.Name != "" && o.NationalID != "" && o.BirthDate != "" &&
		o.Phone != "" && o.Email != "" && o.Password != ""
}

// OwnerUpdate is a partial owner change. A nil field is left untouched.
// An empty string is treated the same as nil, so a field can never be
// blanked through an update.
type OwnerUpdate struct {
	Name       *string
	NationalID *string
	BirthDate  *string
	Phone      *string
	Email      *string
	Password   *string
}

// Provided returns the value of an update field and whether it should be applied
func Provided(field *string) (string, bool) {
	if field == nil || *field == "" {
		return "", false
	}
	return *field, true
}

// Account represents a bank account
type Account struct {
	Number  string `json:"number"`
	Balance int64  `json:"balance"` // Stored in cents/minor units
	Owner   Owner  `json:"owner"`
}

// NewAccount creates an account with a zero balance
func NewAccount(number string, owner Owner) (*Account, error) {
	if !owner.complete() {
		return nil, ErrMissingOwnerFields
	}

	return &Account{
		Number:  number,
		Balance: 0,
		Owner:   owner,
	}, nil
}

// Deposit adds the specified amount to the account balance
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if !a.CanDeposit(amount) {
		return ErrBalanceOverflow
	}

	a.Balance += amount
	return nil
}

// Withdraw subtracts the specified amount from the account balance
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if a.Balance < amount {
		return ErrInsufficientFunds
	}

	a.Balance -= amount
	return nil
}

// CanDeposit reports whether amount can be credited without overflowing the balance
func (a *Account) CanDeposit(amount int64) bool {
	return amount <= math.MaxInt64-a.Balance
}

// CanWithdraw checks if the account has sufficient funds for a withdrawal
func (a *Account) CanWithdraw(amount int64) bool {
	return a.Balance >= amount
}

// PasswordMatches compares the supplied password with the stored one.
// The comparison is plain equality against the stored value.
func (a *Account) PasswordMatches(password string) bool {
	return a.Owner.Password == password
}

// ApplyOwnerUpdate copies every provided field of the update onto the owner
func (a *Account) ApplyOwnerUpdate(update OwnerUpdate) {
	if v, ok := Provided(update.Name); ok {
		a.Owner.Name = v
	}
	if v, ok := Provided(update.NationalID); ok {
		a.Owner.NationalID = v
	}
	if v, ok := Provided(update.BirthDate); ok {
		a.Owner.BirthDate = v
	}
	if v, ok := Provided(update.Phone); ok {
		a.Owner.Phone = v
	}
	if v, ok := Provided(update.Email); ok {
		a.Owner.Email = v
	}
	if v, ok := Provided(update.Password); ok {
		a.Owner.Password = v
	}
}
