package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID            int64           `json:"transaction_id"`
	FromAccountID int64           `json:"from_account"`
	ToAccountID   int64           `json:"to_account"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferStatusSuccessful is the only status a committed transfer reports.
const TransferStatusSuccessful = "successful"

// TransferResult is the response body of a committed transfer.
type TransferResult struct {
	TransactionID int64  `json:"transaction_id"`
	Status        string `json:"status"`
}
