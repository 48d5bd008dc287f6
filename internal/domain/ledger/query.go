package ledger

import (
	"github.com/cubos-banking-ledger/internal/domain/account"
)

// Statement lists the records touching one account, in stored order
type Statement struct {
	Deposits          []Deposit    `json:"deposits"`
	Withdrawals       []Withdrawal `json:"withdrawals"`
	TransfersSent     []Transfer   `json:"transfers_sent"`
	TransfersReceived []Transfer   `json:"transfers_received"`
}

// Balance returns the balance of an account after checking its password
func (l *Ledger) Balance(number, password string) (int64, error) {
	acc, err := l.authorize(number, password)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// Statement returns the deposits, withdrawals and transfers of an account
func (l *Ledger) Statement(number, password string) (Statement, error) {
	if _, err := l.authorize(number, password); err != nil {
		return Statement{}, err
	}

	st := Statement{
		Deposits:          []Deposit{},
		Withdrawals:       []Withdrawal{},
		TransfersSent:     []Transfer{},
		TransfersReceived: []Transfer{},
	}
	for _, d := range l.Deposits {
		if d.AccountNumber == number {
			st.Deposits = append(st.Deposits, d)
		}
	}
	for _, w := range l.Withdrawals {
		if w.AccountNumber == number {
			st.Withdrawals = append(st.Withdrawals, w)
		}
	}
	for _, t := range l.Transfers {
		if t.SourceAccountNumber == number {
			st.TransfersSent = append(st.TransfersSent, t)
		}
		if t.DestinationAccountNumber == number {
			st.TransfersReceived = append(st.TransfersReceived, t)
		}
	}
	return st, nil
}

func (l *Ledger) authorize(number, password string) (*account.Account, error) {
	acc, err := l.find(number)
	if err != nil {
		return nil, err
	}
	if !acc.PasswordMatches(password) {
		return nil, account.ErrInvalidPassword
	}
	return acc, nil
}
