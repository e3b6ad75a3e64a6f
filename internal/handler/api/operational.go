package api

import (
	"errors"
	"net/http"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	reqdto "github.com/Pruthvi98/klaw/internal/handler/dto/request"
	resdto "github.com/Pruthvi98/klaw/internal/handler/dto/response"
	"github.com/Pruthvi98/klaw/internal/handler/httperr"
	"github.com/Pruthvi98/klaw/internal/handler/middleware"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OperationalHandler struct {
	commands commands.OperationalCommands
	queries  queries.OperationalQueries
}

func NewOperationalHandler(cmds commands.OperationalCommands, qs queries.OperationalQueries) *OperationalHandler {
	return &OperationalHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create offset reset request
// @Description Request a consumer group offset reset for approval
// @Tags operational-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOffsetResetRequest true "Offset reset request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/operational [post]
func (h *OperationalHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateOffsetResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset reset type", nil)
		return
	}

	result, err := h.commands.CreateOffsetResetRequest(c.Request.Context(), actor, input)
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRequestResponse{RequestID: result.RequestID})
}

func (h *OperationalHandler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized to request operational changes", nil)
	case errors.Is(err, commands.ErrTargetNotAccessible):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Team does not own this consumer group", nil)
	case errors.Is(err, commands.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusConflict, err, "A pending request already exists for this consumer group", nil)
	case errors.Is(err, request.ErrMissingResetTimestamp),
		errors.Is(err, request.ErrUnexpectedTimestamp),
		errors.Is(err, request.ErrInvalidResetTimestamp):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary List operational requests
// @Description List offset reset requests visible to the caller
// @Tags operational-requests
// @Produce json
// @Security BearerAuth
// @Param requestStatus query string false "Filter by status"
// @Param env query string false "Filter by environment"
// @Param topic query string false "Filter by topic"
// @Param search query string false "Wildcard search on topic or consumer group"
// @Param isMyRequest query bool false "Only the caller's own requests"
// @Param order query string false "ASC_REQUESTED_TIME or DESC_REQUESTED_TIME"
// @Param pageNo query int false "Page number, 1-based"
// @Success 200 {array} resdto.OperationalRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /requests/operational [get]
func (h *OperationalHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
		return
	}

	var query reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter, order, pageNo, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.queries.List(c.Request.Context(), actor, filter, order, pageNo)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperationalRequestViews(views))
}

// @Summary Approve operational request
// @Description Approve a pending offset reset request and execute it
// @Tags operational-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /requests/operational/{id}/approve [post]
func (h *OperationalHandler) Approve(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}

	if err := h.commands.ApproveRequest(c.Request.Context(), actor, id); err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Decline operational request
// @Description Decline a pending offset reset request
// @Tags operational-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.DeclineRequest false "Decline reason"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/operational/{id}/decline [post]
func (h *OperationalHandler) Decline(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}

	var req reqdto.DeclineRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	if err := h.commands.DeclineRequest(c.Request.Context(), actor, id, req.Reason); err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OperationalHandler) writeDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNotAuthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized to decide on requests", nil)
	case errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errors.Is(err, request.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request has already been decided", nil)
	case errors.Is(err, request.ErrSelfApprovalForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Requestor cannot approve their own request", nil)
	case errors.Is(err, commands.ErrExecutionFailed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cluster operation failed, request remains pending", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
