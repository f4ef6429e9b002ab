package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AccountDetails is the account view returned on creation. It carries the
// owner's name so callers don't need a second lookup.
type AccountDetails struct {
	AccountID    int64           `json:"account_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Balance      decimal.Decimal `json:"balance"`
}

// Balance is a point-in-time read of a single account balance.
type Balance struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceUpdate sets an account balance to an absolute value. A batch of
// updates is applied by the store as a single unit.
type BalanceUpdate struct {
	AccountID int64
	Balance   decimal.Decimal
}
