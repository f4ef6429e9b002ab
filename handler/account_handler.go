package handler

import (
	"go-ledger-api/common"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	accounts *service.AccountService
	queries  *service.QueryService
}

func NewAccountHandler(accounts *service.AccountService, queries *service.QueryService) *AccountHandler {
	return &AccountHandler{accounts: accounts, queries: queries}
}

// LedgerTotal is the response of the ledger total endpoint.
type LedgerTotal struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// CreateAccount godoc
// @Summary      Open an account for a customer
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        customerId path int true "Customer ID"
// @Param        account body model.CreateAccountRequest true "Initial deposit"
// @Success      201  {object}  model.AccountDetails
// @Failure      400  {object}  common.AppError "Negative or malformed deposit"
// @Failure      404  {object}  common.AppError "Customer not found"
// @Router       /customers/{customerId}/accounts/ [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	customerID, appErr := common.PathID(r, "customerId")
	if appErr != nil {
		return appErr
	}

	var req model.CreateAccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"customer_id":     customerID,
		"initial_deposit": req.InitialDeposit.String(),
	}).Info("Create account request received")

	details, err := h.accounts.CreateAccount(r.Context(), customerID, *req.InitialDeposit)
	if err != nil {
		return serviceError(err, "Could not create account")
	}

	common.WriteJSON(w, http.StatusCreated, details)
	return nil
}

// ListAccounts godoc
// @Summary      List a customer's accounts
// @Tags         accounts
// @Produce      json
// @Param        customerId path int true "Customer ID"
// @Success      200  {array}   model.Account
// @Failure      404  {object}  common.AppError "Customer not found"
// @Router       /customers/{customerId}/accounts/ [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	customerID, appErr := common.PathID(r, "customerId")
	if appErr != nil {
		return appErr
	}

	accounts, err := h.accounts.ListAccountsForCustomer(r.Context(), customerID)
	if err != nil {
		return serviceError(err, "Could not retrieve accounts")
	}

	common.WriteJSON(w, http.StatusOK, accounts)
	return nil
}

// GetBalance godoc
// @Summary      Get an account balance
// @Tags         accounts
// @Produce      json
// @Param        accountId path int true "Account ID"
// @Success      200  {object}  model.Balance
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /accounts/{accountId}/balance/ [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := common.PathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	balance, err := h.queries.BalanceOf(r.Context(), accountID)
	if err != nil {
		return serviceError(err, "Could not retrieve balance")
	}

	common.WriteJSON(w, http.StatusOK, balance)
	return nil
}

// GetLedgerTotal godoc
// @Summary      Sum of all account balances
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  handler.LedgerTotal
// @Router       /ledger/total [get]
func (h *AccountHandler) GetLedgerTotal(w http.ResponseWriter, r *http.Request) *common.AppError {
	total, err := h.queries.TotalBalance(r.Context())
	if err != nil {
		return serviceError(err, "Could not compute ledger total")
	}

	common.WriteJSON(w, http.StatusOK, LedgerTotal{TotalBalance: total})
	return nil
}
