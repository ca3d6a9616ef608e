package api

import (
	"net/http"

	reqdto "bengkel-service/internal/handler/dto/request"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/internal/handler/httperr"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Register vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	v, err := h.cmds.RegisterVehicle(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVehicle(v))
}

// @Summary List own vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *VehicleHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	rows, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(rows))
}
