package service

import (
	"context"
	"errors"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/repository"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Transfer states, as reported in the "state" log field.
const (
	transferReceived   = "received"
	transferValidating = "validating"
	transferRejected   = "rejected"
	transferApplying   = "applying"
	transferCommitted  = "committed"
)

// RetryPolicy bounds how often a transfer is re-run after a store conflict.
type RetryPolicy struct {
	MaxRetries     uint
	InitialBackoff time.Duration
}

// DefaultRetryPolicy is used when no policy is configured.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 5, InitialBackoff: 10 * time.Millisecond}

// TransactionService moves money between accounts.
type TransactionService struct {
	store repository.LedgerStore
	locks *lockTable
	retry RetryPolicy
}

func NewTransactionService(store repository.LedgerStore, retry RetryPolicy) *TransactionService {
	return &TransactionService{
		store: store,
		locks: newLockTable(),
		retry: retry,
	}
}

// TransferMoney debits amount from one account and credits it to another as a
// single atomic step, recording one transaction. A rejected transfer leaves
// no trace in balances or history.
func (s *TransactionService) TransferMoney(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_id": fromAccountID,
		"to_account_id":   toAccountID,
		"amount":          amount.String(),
	})
	log.WithField("state", transferReceived).Info("Starting money transfer process")

	log.WithField("state", transferValidating).Debug("Validating transfer request")
	if fromAccountID == toAccountID {
		return nil, s.reject(log, ErrSameAccountTransfer)
	}
	if !amount.IsPositive() || !model.IsStorable(amount) {
		return nil, s.reject(log, ErrInvalidAmount)
	}

	release := s.locks.acquire(fromAccountID, toAccountID)
	defer release()

	// Past this point the transfer runs to commit or store failure even if
	// the caller goes away.
	applyCtx := context.WithoutCancel(ctx)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retry.InitialBackoff
	bo.MaxInterval = time.Second

	transaction, err := backoff.Retry(applyCtx, func() (*model.Transaction, error) {
		t, err := s.apply(applyCtx, fromAccountID, toAccountID, amount)
		if err == nil {
			return t, nil
		}
		if errors.Is(err, repository.ErrConflict) {
			log.WithError(err).Warn("Transfer hit a concurrent modification, retrying")
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(s.retry.MaxRetries+1))

	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}
		switch {
		case errors.Is(err, repository.ErrConflict):
			log.WithError(err).Error("Transfer retries exhausted")
			return nil, fmt.Errorf("%w: transfer could not be applied, try again", ErrUnavailable)
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrValidation):
			return nil, s.reject(log, err)
		}
		log.WithError(err).Error("Transfer failed")
		return nil, fmt.Errorf("could not process transfer: %w", err)
	}

	log.WithFields(logrus.Fields{
		"state":          transferCommitted,
		"transaction_id": transaction.ID,
	}).Info("Transaction completed successfully")
	return transaction, nil
}

func (s *TransactionService) reject(log *logrus.Entry, reason error) error {
	log.WithFields(logrus.Fields{
		"state":  transferRejected,
		"reason": reason.Error(),
	}).Info("Transfer rejected")
	return reason
}

// apply performs one attempt: lock both rows, check existence and funds,
// write both legs and the record inside a single store transaction.
func (s *TransactionService) apply(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*model.Transaction, error) {
	var transaction *model.Transaction

	err := s.store.RunInTx(ctx, func(tx repository.LedgerTx) error {
		accounts, err := tx.GetAccountsForUpdate(ctx, fromAccountID, toAccountID)
		if err != nil {
			return fmt.Errorf("could not lock accounts: %w", err)
		}

		fromAccount, ok := accounts[fromAccountID]
		if !ok {
			return ErrSenderAccountNotFound
		}
		toAccount, ok := accounts[toAccountID]
		if !ok {
			return ErrReceiverAccountNotFound
		}
		if fromAccount.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		credited := toAccount.Balance.Add(amount)
		if !model.WithinRange(credited) {
			return ErrBalanceLimitExceeded
		}

		logger.Log.WithField("state", transferApplying).Debug("Applying transfer legs")
		err = tx.UpdateAccountBalances(ctx, []model.BalanceUpdate{
			{AccountID: fromAccount.ID, Balance: fromAccount.Balance.Sub(amount)},
			{AccountID: toAccount.ID, Balance: credited},
		})
		if err != nil {
			return fmt.Errorf("could not update balances: %w", err)
		}

		t := &model.Transaction{
			FromAccountID: fromAccount.ID,
			ToAccountID:   toAccount.ID,
			Amount:        amount,
		}
		if err := tx.CreateTransaction(ctx, t); err != nil {
			return fmt.Errorf("could not create transaction record: %w", err)
		}
		transaction = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}
