// Package ledger holds the persisted bank ledger and the operations that
// validate and mutate it.
package ledger

import (
	"errors"
	"time"

	"github.com/cubos-banking-ledger/internal/domain/account"
)

// TimestampLayout is the wall-clock layout used for every transaction record
const TimestampLayout = "02/01/2006 15:04:05"

var (
	ErrSameAccount       = errors.New("source and destination accounts must be different")
	ErrInvalidBankSecret = errors.New("invalid bank secret")
)

// Deposit records money credited to an account
type Deposit struct {
	Timestamp     string `json:"timestamp"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
}

// Withdrawal records money debited from an account
type Withdrawal struct {
	Timestamp     string `json:"timestamp"`
	AccountNumber string `json:"account_number"`
	Amount        int64  `json:"amount"`
}

// Transfer records money moved between two accounts
type Transfer struct {
	Timestamp                string `json:"timestamp"`
	SourceAccountNumber      string `json:"source_account_number"`
	DestinationAccountNumber string `json:"destination_account_number"`
	Amount                   int64  `json:"amount"`
}

// Ledger is the whole persisted store. It is always loaded, changed and
// saved as one unit.
type Ledger struct {
	BankSecret  string            `json:"bank_secret"`
	Accounts    []account.Account `json:"accounts"`
	Deposits    []Deposit         `json:"deposits"`
	Withdrawals []Withdrawal      `json:"withdrawals"`
	Transfers   []Transfer        `json:"transfers"`
}

// New returns an empty ledger guarded by the given bank secret
func New(bankSecret string) *Ledger {
	return &Ledger{
		BankSecret:  bankSecret,
		Accounts:    []account.Account{},
		Deposits:    []Deposit{},
		Withdrawals: []Withdrawal{},
		Transfers:   []Transfer{},
	}
}

// CheckBankSecret compares the supplied secret with the stored one.
// An empty secret never matches.
func (l *Ledger) CheckBankSecret(secret string) error {
	if secret == "" || l.BankSecret == "" || secret != l.BankSecret {
		return ErrInvalidBankSecret
	}
	return nil
}

// TotalBalance sums every account balance
func (l *Ledger) TotalBalance() int64 {
	var total int64
	for _, acc := range l.Accounts {
		total += acc.Balance
	}
	return total
}

// find returns a pointer into Accounts so callers can mutate in place
func (l *Ledger) find(number string) (*account.Account, error) {
	for i := range l.Accounts {
		if l.Accounts[i].Number == number {
			return &l.Accounts[i], nil
		}
	}
	return nil, account.ErrAccountNotFound{Number: number}
}

// Clock supplies the instant stamped on new transaction records
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock
var SystemClock Clock = ClockFunc(time.Now)

func stamp(at time.Time) string {
	return at.Format(TimestampLayout)
}
