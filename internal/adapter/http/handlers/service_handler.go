package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary  Register a service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    payload  body      request.ServiceRequest  true  "service"
// @Success  201      {object}  response.ServiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

// GetService godoc
// @Summary  Get a service
// @Tags     services
// @Produce  json
// @Param    id   path      string  true  "service id"
// @Success  200  {object}  response.ServiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(found))
}

// ListServices godoc
// @Summary  List services
// @Tags     services
// @Produce  json
// @Param    skip   query     int  false  "offset"  default(0)
// @Param    limit  query     int  false  "page size (1-100)"  default(5)
// @Success  200    {object}  response.PaginatedResponse[response.ServiceResponse]
// @Failure  400    {object}  pkg.HTTPError
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.NewPaginated(items, query.ToPage(), response.FromService))
}

// CountServices godoc
// @Summary  Count services
// @Tags     services
// @Produce  json
// @Success  200  {object}  response.CountResponse
// @Router   /services/count [get]
func (h *ServiceHandler) CountServices(c *gin.Context) {
	total, err := h.usecase.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: total})
}

// UpdateService godoc
// @Summary  Update a service
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id       path      string  true  "service id"
// @Param    payload  body      request.ServiceRequest  true  "service"
// @Success  200      {object}  response.ServiceResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

// DeleteService godoc
// @Summary  Delete a service not referenced by any work order
// @Tags     services
// @Produce  json
// @Param    id   path      string  true  "service id"
// @Success  200  {object}  response.ServiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(deleted))
}
