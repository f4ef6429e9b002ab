package handler

import (
	"go-ledger-api/common"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	transfers *service.TransactionService
	queries   *service.QueryService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(transfers *service.TransactionService, queries *service.QueryService) *TransactionHandler {
	return &TransactionHandler{transfers: transfers, queries: queries}
}

// CreateTransfer godoc
// @Summary      Transfer money between accounts
// @Description  Moves the amount from one account to another atomically. A rejected transfer changes nothing.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the financial transfer"
// @Success      201  {object}  model.TransferResult
// @Failure      400  {object}  common.AppError "Bad Request (e.g., insufficient funds, same account, invalid amount)"
// @Failure      404  {object}  common.AppError "Sender or receiver account not found"
// @Failure      503  {object}  common.AppError "Transfer could not be applied due to contention"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /transfers/ [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	transaction, err := h.transfers.TransferMoney(r.Context(), req.FromAccountID, req.ToAccountID, *req.Amount)
	if err != nil {
		return serviceError(err, "Could not process transfer")
	}

	common.WriteJSON(w, http.StatusCreated, model.TransferResult{
		TransactionID: transaction.ID,
		Status:        model.TransferStatusSuccessful,
	})
	return nil
}

// ListTransactionsForAccount godoc
// @Summary      List account transaction history
// @Description  Every transaction the account sent or received, oldest first. Unknown accounts have an empty history.
// @Tags         transactions
// @Produce      json
// @Param        accountId path int true "The ID of the account to retrieve transactions for"
// @Success      200  {array}   model.Transaction "A list of transactions for the account"
// @Failure      400  {object}  common.AppError "Invalid account ID in URL path"
// @Failure      500  {object}  common.AppError "Internal server error while retrieving transactions"
// @Router       /accounts/{accountId}/transactions/ [get]
func (h *TransactionHandler) ListTransactionsForAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := common.PathID(r, "accountId")
	if appErr != nil {
		return appErr
	}

	transactions, err := h.queries.TransactionsOf(r.Context(), accountID)
	if err != nil {
		return serviceError(err, "Could not retrieve transactions")
	}

	common.WriteJSON(w, http.StatusOK, transactions)
	return nil
}
