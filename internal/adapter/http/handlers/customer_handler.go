package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    payload  body      request.CustomerRequest  true  "customer"
// @Success  201      {object}  response.CustomerResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "customer id"
// @Success  200  {object}  response.CustomerResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(found))
}

// ListCustomers godoc
// @Summary  List customers
// @Tags     customers
// @Produce  json
// @Param    skip   query     int  false  "offset"  default(0)
// @Param    limit  query     int  false  "page size (1-100)"  default(5)
// @Success  200    {object}  response.PaginatedResponse[response.CustomerResponse]
// @Failure  400    {object}  pkg.HTTPError
// @Router   /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var query request.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, errInvalidQuery)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), query.ToPage())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(items, query.ToPage(), response.FromCustomer))
}

// UpdateCustomer godoc
// @Summary  Update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id       path      string  true  "customer id"
// @Param    payload  body      request.CustomerRequest  true  "customer"
// @Success  200      {object}  response.CustomerResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// DeleteCustomer godoc
// @Summary  Delete a customer not referenced by any work order
// @Tags     customers
// @Produce  json
// @Param    id   path      string  true  "customer id"
// @Success  200  {object}  response.CustomerResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(deleted))
}
