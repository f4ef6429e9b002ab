package repository

import (
	"context"
	"database/sql"
	"errors"
	"go-ledger-api/logger"
	"go-ledger-api/model"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// CreateCustomer inserts a customer and fills in the generated id.
func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	log := logger.Log.WithField("name", customer.Name)
	log.Info("Executing query to create a new customer")

	query := `INSERT INTO customers (name) VALUES ($1) RETURNING id`
	err := r.DB.QueryRowContext(ctx, query, customer.Name).Scan(&customer.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute create customer query")
		return translateError(err)
	}
	return nil
}

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	customer := &model.Customer{}
	query := `SELECT id, name FROM customers WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Name)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.WithError(err).WithField("customer_id", id).Error("Failed to execute get customer query")
		}
		return nil, translateError(err)
	}
	return customer, nil
}
