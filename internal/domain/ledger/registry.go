package ledger

import (
	"fmt"
	"strconv"

	"github.com/cubos-banking-ledger/internal/domain/account"
)

// ListAccounts returns a copy of every account in stored order
func (l *Ledger) ListAccounts() []account.Account {
	out := make([]account.Account, len(l.Accounts))
	copy(out, l.Accounts)
	return out
}

// NextAccountNumber returns the highest existing number plus one, zero padded
// to four digits. Numbers that are not numeric are skipped.
func (l *Ledger) NextAccountNumber() string {
	highest := 0
	for _, acc := range l.Accounts {
		n, err := strconv.Atoi(acc.Number)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%04d", highest+1)
}

// CreateAccount opens a new zero-balance account for owner
func (l *Ledger) CreateAccount(owner account.Owner) (account.Account, error) {
	acc, err := account.NewAccount(l.NextAccountNumber(), owner)
	if err != nil {
		return account.Account{}, err
	}

	if err := l.checkIdentity("", owner.NationalID, owner.Email); err != nil {
		return account.Account{}, err
	}

	l.Accounts = append(l.Accounts, *acc)
	return *acc, nil
}

// UpdateOwner applies the provided owner fields to an existing account
func (l *Ledger) UpdateOwner(number string, update account.OwnerUpdate) error {
	acc, err := l.find(number)
	if err != nil {
		return err
	}

	nationalID, _ := account.Provided(update.NationalID)
	email, _ := account.Provided(update.Email)
	if err := l.checkIdentity(number, nationalID, email); err != nil {
		return err
	}

	acc.ApplyOwnerUpdate(update)
	return nil
}

// DeleteAccount removes an account whose balance is zero. Its transaction
// records stay in the ledger.
func (l *Ledger) DeleteAccount(number string) error {
	acc, err := l.find(number)
	if err != nil {
		return err
	}
	if acc.Balance != 0 {
		return account.ErrNonZeroBalance
	}

	kept := l.Accounts[:0]
	for _, a := range l.Accounts {
		if a.Number != number {
			kept = append(kept, a)
		}
	}
	l.Accounts = kept
	return nil
}

// checkIdentity rejects a national ID or email already held by an account
// other than except. Empty values are not checked.
func (l *Ledger) checkIdentity(except, nationalID, email string) error {
	if nationalID != "" {
		for _, acc := range l.Accounts {
			if acc.Number != except && acc.Owner.NationalID == nationalID {
				return account.ErrDuplicateIdentity{Field: account.IdentityNationalID, Value: nationalID}
			}
		}
	}
	if email != "" {
		for _, acc := range l.Accounts {
			if acc.Number != except && acc.Owner.Email == email {
				return account.ErrDuplicateIdentity{Field: account.IdentityEmail, Value: email}
			}
		}
	}
	return nil
}
