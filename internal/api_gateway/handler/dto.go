package handler

import (
	"github.com/cubos-banking-ledger/internal/domain/account"
)

// CreateAccountRequest represents a request to create a new account
type CreateAccountRequest struct {
	Name       string `json:"name" binding:"required"`
	NationalID string `json:"national_id" binding:"required"`
	BirthDate  string `json:"birth_date" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (r CreateAccountRequest) owner() account.Owner {
	return account.Owner{
		Name:       r.Name,
		NationalID: r.NationalID,
		BirthDate:  r.BirthDate,
		Phone:      r.Phone,
		Email:      r.Email,
		Password:   r.Password,
	}
}

// UpdateOwnerRequest is a partial owner change. Omitted and empty fields keep their value.
type UpdateOwnerRequest struct {
	Name       *string `json:"name"`
	NationalID *string `json:"national_id"`
	BirthDate  *string `json:"birth_date"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
}

func (r UpdateOwnerRequest) update() account.OwnerUpdate {
	return account.OwnerUpdate{
		Name:       r.Name,
		NationalID: r.NationalID,
		BirthDate:  r.BirthDate,
		Phone:      r.Phone,
		Email:      r.Email,
		Password:   r.Password,
	}
}

// ListAccountsQuery carries the bank secret gate of GET /accounts
type ListAccountsQuery struct {
	BankSecret string `form:"bank_secret" binding:"required"`
}

// AccountCredentialsQuery identifies an account and its password in query parameters
type AccountCredentialsQuery struct {
	AccountNumber string `form:"account_number" binding:"required"`
	Password      string `form:"password" binding:"required"`
}

// DepositRequest represents a request to credit an account
type DepositRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest represents a request to debit an account
type WithdrawRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Password      string `json:"password" binding:"required"`
}

// TransferRequest represents a request to move money between accounts
type TransferRequest struct {
	SourceAccountNumber      string `json:"source_account_number" binding:"required"`
	DestinationAccountNumber string `json:"destination_account_number" binding:"required"`
	Amount                   int64  `json:"amount" binding:"required,gt=0"`
	Password                 string `json:"password" binding:"required"`
}

// OwnerResponse is the owner of an account without its password
type OwnerResponse struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	Number  string        `json:"number"`
	Balance int64         `json:"balance"`
	Owner   OwnerResponse `json:"owner"`
}

// BalanceResponse represents the balance of one account
type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// mapAccountToResponse maps an account entity to an account response DTO
func mapAccountToResponse(acc account.Account) AccountResponse {
	return AccountResponse{
		Number:  acc.Number,
		Balance: acc.Balance,
		Owner: OwnerResponse{
			Name:       acc.Owner.Name,
			NationalID: acc.Owner.NationalID,
			BirthDate:  acc.Owner.BirthDate,
			Phone:      acc.Owner.Phone,
			Email:      acc.Owner.Email,
		},
	}
}
