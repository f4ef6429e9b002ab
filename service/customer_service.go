package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/repository"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CustomerService handles customer registration and lookup.
type CustomerService struct {
	store repository.LedgerStore
	cache ICacheClient
	ttl   time.Duration
	group singleflight.Group
}

// NewCustomerService creates a CustomerService. cache may be nil, in which
// case every lookup goes to the store.
func NewCustomerService(store repository.LedgerStore, cache ICacheClient, ttl time.Duration) *CustomerService {
	return &CustomerService{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

func customerCacheKey(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}

// CreateCustomer registers a new customer under a fresh id.
func (s *CustomerService) CreateCustomer(ctx context.Context, name string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCustomerName
	}

	customer := &model.Customer{Name: name}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrConstraint) {
			return nil, ErrInvalidCustomerName
		}
		return nil, fmt.Errorf("could not create customer: %w", err)
	}

	logger.Log.WithField("customer_id", customer.ID).Info("Customer created")
	s.cacheCustomer(ctx, customer)
	return customer, nil
}

// GetCustomer looks a customer up with a cache-aside strategy. Customers never
// change after creation, so cached entries are only dropped by their TTL.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	key := customerCacheKey(id)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var customer model.Customer
			if err := json.Unmarshal([]byte(cached), &customer); err == nil {
				return &customer, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Log.WithError(err).WithField("key", key).Warn("Customer cache read failed")
		}
	}

	// The lookup is shared by every caller waiting on this id, so it must not
	// die with whichever request happened to start it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		customer, err := s.store.GetCustomerByID(shared, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCustomerNotFound
			}
			return nil, fmt.Errorf("could not load customer: %w", err)
		}
		s.cacheCustomer(shared, customer)
		return customer, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers collapsed by singleflight share one value; hand out copies.
	customer := *v.(*model.Customer)
	return &customer, nil
}

func (s *CustomerService) cacheCustomer(ctx context.Context, customer *model.Customer) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(customer)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, customerCacheKey(customer.ID), data, s.ttl).Err(); err != nil {
		logger.Log.WithError(err).WithField("customer_id", customer.ID).Warn("Customer cache write failed")
	}
}
