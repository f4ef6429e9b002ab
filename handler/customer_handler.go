package handler

import (
	"go-ledger-api/common"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
)

type CustomerHandler struct {
	service *service.CustomerService
}

func NewCustomerHandler(s *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer body model.CreateCustomerRequest true "Customer to create"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  common.AppError "Empty or missing name"
// @Failure      500  {object}  common.AppError
// @Router       /customers/ [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateCustomerRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithField("name", req.Name).Info("Create customer request received")

	customer, err := h.service.CreateCustomer(r.Context(), req.Name)
	if err != nil {
		return serviceError(err, "Could not create customer")
	}

	common.WriteJSON(w, http.StatusCreated, customer)
	return nil
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        customerId path int true "Customer ID"
// @Success      200  {object}  model.Customer
// @Failure      400  {object}  common.AppError "Invalid customer ID"
// @Failure      404  {object}  common.AppError "Customer not found"
// @Router       /customers/{customerId} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) *common.AppError {
	customerID, appErr := common.PathID(r, "customerId")
	if appErr != nil {
		return appErr
	}

	customer, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		return serviceError(err, "Could not retrieve customer")
	}

	common.WriteJSON(w, http.StatusOK, customer)
	return nil
}
