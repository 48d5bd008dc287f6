package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
	"github.com/cubos-banking-ledger/internal/logger"
)

// respondDomainError maps a service error onto the response taxonomy.
// Business rejections are answered with their own message; anything else is
// logged and hidden behind a generic 500.
func respondDomainError(c *gin.Context, log *slog.Logger, op string, err error) {
	reqLog := logger.FromContext(c.Request.Context(), log)

	switch {
	case errors.Is(err, account.ErrMissingOwnerFields),
		errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, account.ErrNonZeroBalance),
		errors.Is(err, account.ErrBalanceOverflow),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, account.ErrDuplicateIdentity{}):
		reqLog.Info("Request rejected", "operation", op, "reason", err.Error())
		RespondBadRequest(c, err.Error())
	case errors.Is(err, account.ErrInvalidPassword),
		errors.Is(err, ledger.ErrInvalidBankSecret):
		reqLog.Warn("Authorization failed", "operation", op, "reason", err.Error())
		RespondUnauthorized(c, err.Error())
	case errors.Is(err, account.ErrInsufficientFunds):
		reqLog.Info("Request rejected", "operation", op, "reason", err.Error())
		RespondForbidden(c, err.Error())
	case errors.Is(err, account.ErrAccountNotFound{}):
		reqLog.Info("Account not found", "operation", op, "reason", err.Error())
		RespondNotFound(c, err.Error())
	default:
		reqLog.Error("Operation failed", "operation", op, "error", err)
		RespondInternalError(c)
	}
}
