package api

import (
	"net/http"

	reqdto "bengkel-service/internal/handler/dto/request"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/internal/handler/httperr"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	cmds commands.HistoryCommands
	q    queries.HistoryQueries
}

func NewHistoryHandler(cmds commands.HistoryCommands, q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{cmds: cmds, q: q}
}

// @Summary Record service history
// @Description Turn a PENDING booking into a history entry and confirm the booking.
// @Description Accepts either an items list or the flat single-item form.
// @Tags histories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateHistoryRequest true "History request"
// @Success 201 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/history [post]
func (h *HistoryHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	input, err := req.ToInput(bookingID)
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrValidation))
		return
	}

	created, err := h.cmds.CreateHistory(c.Request.Context(), actor, input)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, created.ID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHistoryDetail(view))
}

// @Summary List histories
// @Description Own histories, or every history for staff
// @Tags histories
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.HistoryListResponse
// @Router /histories [get]
func (h *HistoryHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}

	rows, next, err := h.q.List(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.HistoryListResponse{
		Items:      resdto.FromHistoryList(rows),
		NextCursor: nextCursor(next),
	})
}

// @Summary Get history
// @Tags histories
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /histories/{id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryDetail(view))
}

// @Summary Update history progress
// @Tags histories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Param request body reqdto.UpdateHistoryStatusRequest true "New status"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /histories/{id}/status [patch]
func (h *HistoryHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateHistoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if _, err := h.cmds.UpdateHistoryStatus(c.Request.Context(), actor, id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryDetail(view))
}

// @Summary Get invoice
// @Description JSON by default, plain text with ?format=text
// @Tags histories
// @Produce json,plain
// @Security BearerAuth
// @Param id path string true "History ID"
// @Param format query string false "json or text"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /histories/{id}/invoice [get]
func (h *HistoryHandler) Invoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inv, err := h.q.GetInvoice(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, inv.Render())
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(inv))
}
