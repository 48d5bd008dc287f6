package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cubos-banking-ledger/internal/api_gateway/service"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Deposit credits an account
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	if err := h.transactionService.Deposit(c.Request.Context(), req.AccountNumber, req.Amount); err != nil {
		respondDomainError(c, h.logger, service.OpDeposit, err)
		return
	}

	RespondNoContent(c)
}

// Withdraw debits an account after checking its password
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	if err := h.transactionService.Withdraw(c.Request.Context(), req.AccountNumber, req.Amount, req.Password); err != nil {
		respondDomainError(c, h.logger, service.OpWithdraw, err)
		return
	}

	RespondNoContent(c)
}

// Transfer moves money between two accounts after checking the source password
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, bindingMessage(err))
		return
	}

	err := h.transactionService.Transfer(c.Request.Context(),
		req.SourceAccountNumber, req.DestinationAccountNumber, req.Amount, req.Password)
	if err != nil {
		respondDomainError(c, h.logger, service.OpTransfer, err)
		return
	}

	RespondNoContent(c)
}
