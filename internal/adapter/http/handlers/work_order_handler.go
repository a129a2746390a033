package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler exposes the work-order aggregate manager.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary      Open a work order
// @Description  Opens a pending work order with optional services and parts. Nothing is stored when any reference is missing.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateWorkOrderRequest  true  "work order"
// @Success      201      {object}  response.WorkOrderFullResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrderFull(wo))
}

// GetWorkOrder godoc
// @Summary  Get a work order with customer, mechanic, services and parts
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "work order id"
// @Success  200  {object}  response.WorkOrderFullResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// ListWorkOrders godoc
// @Summary  List work orders, newest first
// @Tags     work-orders
// @Produce  json
// @Param    skip           query     int     false  "offset"  default(0)
// @Param    limit          query     int     false  "page size (1-100)"  default(5)
// @Param    customer_id    query     string  false  "customer id"
// @Param    mechanic_id    query     string  false  "mechanic id"
// @Param    customer_name  query     string  false  "customer name contains (case-insensitive)"
// @Param    mechanic_name  query     string  false  "mechanic name contains (case-insensitive)"
// @Param    opened_from    query     string  false  "RFC3339 lower bound (inclusive), needs opened_to; an inverted range matches nothing"
// @Param    opened_to      query     string  false  "RFC3339 upper bound (inclusive), needs opened_from"
// @Success  200            {object}  response.PaginatedResponse[response.WorkOrderResponse]
// @Failure  400            {object}  pkg.HTTPError
// @Router   /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	var query request.ListWorkOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, errInvalidQuery)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondInvalid(c, errInvalidQuery)
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginated(orders, filter.Page, response.FromWorkOrder))
}

// UpdateWorkOrder godoc
// @Summary  Reassign the customer and/or mechanic of a pending work order
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "work order id"
// @Param    payload  body      request.UpdateWorkOrderRequest  true  "new references"
// @Success  200      {object}  response.WorkOrderFullResponse
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /work-orders/{id} [put]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	var payload request.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.Reassign(c.Request.Context(), c.Param("id"), payload.CustomerID, payload.MechanicID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// DeleteWorkOrder godoc
// @Summary  Delete a work order and its attachments
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "work order id"
// @Success  200  {object}  response.WorkOrderFullResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// ConcludeWorkOrder godoc
// @Summary  Conclude a pending work order
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "work order id"
// @Success  200  {object}  response.WorkOrderFullResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/conclude [patch]
func (h *WorkOrderHandler) ConcludeWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Conclude(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// AddService godoc
// @Summary  Attach a service
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                     true  "work order id"
// @Param    payload  body      request.AddServiceRequest  true  "service"
// @Success  200      {object}  response.WorkOrderFullResponse
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /work-orders/{id}/services [post]
func (h *WorkOrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.AddService(c.Request.Context(), c.Param("id"), payload.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// RemoveService godoc
// @Summary  Detach a service
// @Tags     work-orders
// @Produce  json
// @Param    id          path      string  true  "work order id"
// @Param    service_id  path      string  true  "service id"
// @Success  200         {object}  response.WorkOrderFullResponse
// @Failure  404         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Router   /work-orders/{id}/services/{service_id} [delete]
func (h *WorkOrderHandler) RemoveService(c *gin.Context) {
	wo, err := h.usecase.RemoveService(c.Request.Context(), c.Param("id"), c.Param("service_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// AddPart godoc
// @Summary      Attach a part
// @Description  Attaching a part that is already on the order adds to its quantity.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "work order id"
// @Param        payload  body      request.WorkOrderPartRequest  true  "part and quantity"
// @Success      200      {object}  response.WorkOrderFullResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /work-orders/{id}/parts [post]
func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	var payload request.WorkOrderPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	wo, err := h.usecase.AddPart(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}

// RemovePart godoc
// @Summary  Detach a part, whatever its quantity
// @Tags     work-orders
// @Produce  json
// @Param    id       path      string  true  "work order id"
// @Param    part_id  path      string  true  "part id"
// @Success  200      {object}  response.WorkOrderFullResponse
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /work-orders/{id}/parts/{part_id} [delete]
func (h *WorkOrderHandler) RemovePart(c *gin.Context) {
	wo, err := h.usecase.RemovePart(c.Request.Context(), c.Param("id"), c.Param("part_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderFull(wo))
}
