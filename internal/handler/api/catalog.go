package api

import (
	"net/http"

	"bengkel-service/internal/domain/catalog"
	reqdto "bengkel-service/internal/handler/dto/request"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/internal/handler/httperr"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	h.list(c, catalog.KindService)
}

// @Summary List spareparts
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CatalogItemResponse
// @Router /catalog/spareparts [get]
func (h *CatalogHandler) ListSpareparts(c *gin.Context) {
	h.list(c, catalog.KindSparepart)
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.CatalogItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /catalog/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	h.create(c, req.ToInput())
}

// @Summary Create sparepart
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSparepartRequest true "Sparepart"
// @Success 201 {object} resdto.CatalogItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /catalog/spareparts [post]
func (h *CatalogHandler) CreateSparepart(c *gin.Context) {
	var req reqdto.CreateSparepartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	h.create(c, req.ToInput())
}

func (h *CatalogHandler) create(c *gin.Context, input commands.CreateCatalogItemRequest) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	item, err := h.cmds.CreateItem(c.Request.Context(), actor, input)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCatalogItem(item))
}

func (h *CatalogHandler) list(c *gin.Context, kind catalog.Kind) {
	rows, err := h.q.List(c.Request.Context(), kind)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogViews(rows))
}
