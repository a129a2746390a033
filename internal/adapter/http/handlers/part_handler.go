package handlers

import (
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	response "oficina_mecanica/internal/adapter/http/dto/response"
	"oficina_mecanica/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

// CreatePart godoc
// @Summary  Register a part
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    payload  body      request.PartRequest  true  "part"
// @Success  201      {object}  response.PartResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPart(created))
}

// GetPart godoc
// @Summary  Get a part
// @Tags     parts
// @Produce  json
// @Param    id   path      string  true  "part id"
// @Success  200  {object}  response.PartResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(found))
}

// ListParts godoc
// @Summary  List parts
// @Tags     parts
// @Produce  json
// @Param    skip   query     int  false  "offset"  default(0)
// @Param    limit  query     int  false  "page size (1-100)"  default(5)
// @Success  200    {object}  response.PaginatedResponse[response.PartResponse]
// @Failure  400    {object}  pkg.HTTPError
// @Router   /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.NewPaginated(items, query.ToPage(), response.FromPart))
}

// CountParts godoc
// @Summary  Count parts
// @Tags     parts
// @Produce  json
// @Success  200  {object}  response.CountResponse
// @Router   /parts/count [get]
func (h *PartHandler) CountParts(c *gin.Context) {
	total, err := h.usecase.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CountResponse{Count: total})
}

// UpdatePart godoc
// @Summary  Update a part
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id       path      string  true  "part id"
// @Param    payload  body      request.PartRequest  true  "part"
// @Success  200      {object}  response.PartResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(updated))
}

// DeletePart godoc
// @Summary  Delete a part not referenced by any work order
// @Tags     parts
// @Produce  json
// @Param    id   path      string  true  "part id"
// @Success  200  {object}  response.PartResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	deleted, err := h.usecase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPart(deleted))
}
