package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

// CreateMechanic godoc
// @Summary  Register a mechanic
// @Tags     mechanics
// @Accept   json
// @Produce  json
// @Param    payload  body      request.MechanicRequest  true  "mechanic"
// @Success  201      {object}  response.MechanicResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /mechanics [post]
func (h *MechanicHandler) CreateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMechanic(created))
}

// GetMechanic godoc
// @Summary  Get a mechanic
// @Tags     mechanics
// @Produce  json
// @Param    id   path      string  true  "mechanic id"
// @Success  200  {object}  response.MechanicResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /mechanics/{id} [get]
func (h *MechanicHandler) GetMechanic(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(found))
}

// ListMechanics godoc
// @Summary  List mechanics
// @Tags     mechanics
// @Produce  json
// @Param    skip   query     int  false  "offset"  default(0)
// @Param    limit  query     int  false  "page size (1-100)"  default(5)
// @Success  200    {object}  response.PaginatedResponse[response.MechanicResponse]
// @Failure  400    {object}  pkg.HTTPError
// @Router   /mechanics [get]
func (h *MechanicHandler) ListMechanics(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.NewPaginated(items, query.ToPage(), response.FromMechanic))
}

// UpdateMechanic godoc
// @Summary  Update a mechanic
// @Tags     mechanics
// @Accept   json
// @Produce  json
// @Param    id       path      string  true  "mechanic id"
// @Param    payload  body      request.MechanicRequest  true  "mechanic"
// @Success  200      {object}  response.MechanicResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /mechanics/{id} [put]
func (h *MechanicHandler) UpdateMechanic(c *gin.Context) {
	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(updated))
}

// DeleteMechanic godoc
// @Summary  Delete a mechanic not referenced by any work order
// @Tags     mechanics
// @Produce  json
// @Param    id   path      string  true  "mechanic id"
// @Success  200  {object}  response.MechanicResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /mechanics/{id} [delete]
func (h *MechanicHandler) DeleteMechanic(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMechanic(deleted))
}
