// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CreateCustomerRequest defines the payload for creating a new customer.
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateAccountRequest defines the payload for opening an account.
// Range and scale checks on the deposit are done by the account service,
// the validator only guards presence.
type CreateAccountRequest struct {
	InitialDeposit *decimal.Decimal `json:"initial_deposit" validate:"required"`
}

// TransferRequest defines the payload for a money transfer.
type TransferRequest struct {
	FromAccountID int64            `json:"from_account" validate:"required"`
	ToAccountID   int64            `json:"to_account" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
}
