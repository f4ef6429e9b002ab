// file: service/account_service.go

package service

import (
	"context"
	"errors"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// AccountService opens accounts and maintains the customer → accounts view.
type AccountService struct {
	store     repository.LedgerStore
	customers *CustomerService
}

func NewAccountService(store repository.LedgerStore, customers *CustomerService) *AccountService {
	return &AccountService{
		store:     store,
		customers: customers,
	}
}

// CreateAccount opens an account for an existing customer with an initial deposit.
func (s *AccountService) CreateAccount(ctx context.Context, customerID int64, initialDeposit decimal.Decimal) (*model.AccountDetails, error) {
	if initialDeposit.IsNegative() || !model.IsStorable(initialDeposit) {
		return nil, ErrInvalidDeposit
	}

	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		CustomerID: customer.ID,
		Balance:    initialDeposit,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCustomerNotFound
		case errors.Is(err, repository.ErrConstraint):
			return nil, ErrInvalidDeposit
		}
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"customer_id": customer.ID,
		"balance":     account.Balance.String(),
	}).Info("Account created")

	return &model.AccountDetails{
		AccountID:    account.ID,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Balance:      account.Balance,
	}, nil
}

// ListAccountsForCustomer returns the accounts a customer owns, oldest first.
func (s *AccountService) ListAccountsForCustomer(ctx context.Context, customerID int64) ([]*model.Account, error) {
	if _, err := s.customers.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	accounts, err := s.store.GetAccountsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}
	return accounts, nil
}
