package handler

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cubos-banking-ledger/internal/api_gateway/service"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountService service.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(logger *slog.Logger, accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// List returns every account when the bank secret matches
func (h *AccountHandler) List(c *gin.Context) {
	var query ListAccountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		RespondUnauthorized(c, "bank secret is required")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), query.BankSecret)
	if err != nil {
		respondDomainError(c, h.logger, service.OpListAccounts, err)
		return
	}

	response := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, mapAccountToResponse(acc))
	}
	RespondOK(c, response)
}

// Create opens a new account, rejecting duplicate national IDs and emails
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	acc, err := h.accountService.CreateAccount(c.Request.Context(), req.owner())
	if err != nil {
		respondDomainError(c, h.logger, service.OpCreateAccount, err)
		return
	}

	RespondCreated(c, mapAccountToResponse(*acc))
}

// UpdateOwner applies a partial owner change to the account in the path
func (h *AccountHandler) UpdateOwner(c *gin.Context) {
	// An empty body is an update with no fields
	var req UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	if err := h.accountService.UpdateOwner(c.Request.Context(), c.Param("number"), req.update()); err != nil {
		respondDomainError(c, h.logger, service.OpUpdateOwner, err)
		return
	}

	RespondNoContent(c)
}

// Delete removes the account in the path when its balance is zero
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("number")); err != nil {
		respondDomainError(c, h.logger, service.OpDeleteAccount, err)
		return
	}

	RespondNoContent(c)
}

// Balance returns the balance of an account after checking its password
func (h *AccountHandler) Balance(c *gin.Context) {
	var query AccountCredentialsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	balance, err := h.accountService.GetBalance(c.Request.Context(), query.AccountNumber, query.Password)
	if err != nil {
		respondDomainError(c, h.logger, service.OpBalance, err)
		return
	}

	RespondOK(c, BalanceResponse{Balance: balance})
}

// Statement returns the deposits, withdrawals and transfers of an account
func (h *AccountHandler) Statement(c *gin.Context) {
	var query AccountCredentialsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	statement, err := h.accountService.GetStatement(c.Request.Context(), query.AccountNumber, query.Password)
	if err != nil {
		respondDomainError(c, h.logger, service.OpStatement, err)
		return
	}

	RespondOK(c, statement)
}
