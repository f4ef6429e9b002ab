package service

import (
	"context"
	"errors"
	"fmt"
	"go-ledger-api/model"
	"go-ledger-api/repository"

	"github.com/shopspring/decimal"
)

// QueryService serves read-only views of the ledger. It never takes the
// transfer locks; every read is a single consistent store read.
type QueryService struct {
	store repository.LedgerStore
}

func NewQueryService(store repository.LedgerStore) *QueryService {
	return &QueryService{store: store}
}

func (s *QueryService) BalanceOf(ctx context.Context, accountID int64) (*model.Balance, error) {
	account, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not read balance: %w", err)
	}
	return &model.Balance{AccountID: account.ID, Balance: account.Balance}, nil
}

// TransactionsOf lists the transactions an account sent or received, oldest
// first. An unknown account simply has no history.
func (s *QueryService) TransactionsOf(ctx context.Context, accountID int64) ([]*model.Transaction, error) {
	transactions, err := s.store.GetTransactionsByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve transactions: %w", err)
	}
	return transactions, nil
}

// TotalBalance sums every account. Transfers never change it; only new
// accounts do.
func (s *QueryService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.store.SumBalances(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("could not sum balances: %w", err)
	}
	return total, nil
}
