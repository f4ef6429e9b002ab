package router

import (
	"go-ledger-api/common"
	_ "go-ledger-api/docs"
	"go-ledger-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type appHandler = func(http.ResponseWriter, *http.Request) *common.AppError

func NewRouter(customerHandler *handler.CustomerHandler, accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Customer Routes
	handleSlashed(mux, "POST /customers/", customerHandler.CreateCustomer)
	mux.Handle("GET /customers/{customerId}", handler.ErrorHandlingMiddleware(customerHandler.GetCustomer))

	// Account Routes
	handleSlashed(mux, "POST /customers/{customerId}/accounts/", accountHandler.CreateAccount)
	handleSlashed(mux, "GET /customers/{customerId}/accounts/", accountHandler.ListAccounts)
	handleSlashed(mux, "GET /accounts/{accountId}/balance/", accountHandler.GetBalance)
	mux.Handle("GET /ledger/total", handler.ErrorHandlingMiddleware(accountHandler.GetLedgerTotal))

	// Transaction Routes
	handleSlashed(mux, "POST /transfers/", transactionHandler.CreateTransfer)
	handleSlashed(mux, "GET /accounts/{accountId}/transactions/", transactionHandler.ListTransactionsForAccount)

	return handler.RequestLogger(mux)
}

// handleSlashed registers a route that ends in a slash so that it matches
// exactly, with or without the trailing slash, instead of as a subtree.
func handleSlashed(mux *http.ServeMux, pattern string, h appHandler) {
	wrapped := handler.ErrorHandlingMiddleware(h)
	mux.Handle(pattern+"{$}", wrapped)
	mux.Handle(pattern[:len(pattern)-1], wrapped)
}
