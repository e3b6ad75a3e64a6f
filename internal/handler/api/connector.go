package api

import (
	"errors"
	"net/http"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/connector"
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

type ConnectorHandler struct {
	commands commands.ConnectorCommands
	queries  queries.ConnectorQueries
}

func NewConnectorHandler(cmds commands.ConnectorCommands, qs queries.ConnectorQueries) *ConnectorHandler {
	return &ConnectorHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create connector request
// @Description Request creation of a connector for approval
// @Tags connector-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateConnectorRequest true "Connector request"
// @Success 201 {object} resdto.CreateRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/connector [post]
func (h *ConnectorHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing in context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateConnectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.commands.CreateConnectorRequest(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotAuthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized to request connectors", nil)
		case errors.Is(err, commands.ErrDuplicateRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "A pending request already exists for this connector", nil)
		case errors.Is(err, connector.ErrInvalidConnectorName),
			errors.Is(err, connector.ErrInvalidDescription),
			errors.Is(err, connector.ErrInvalidConfig):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRequestResponse{RequestID: result.RequestID})
}

// @Summary List connector requests
// @Description List connector requests visible to the caller
// @Tags connector-requests
// @Produce json
// @Security BearerAuth
// @Param requestStatus query string false "Filter by status"
// @Param env query string false "Filter by environment"
// @Param search query string false "Wildcard search on connector name"
// @Param isMyRequest query bool false "Only the caller's own requests"
// @Param order query string false "ASC_REQUESTED_TIME or DESC_REQUESTED_TIME"
// @Param pageNo query int false "Page number, 1-based"
// @Success 200 {array} resdto.ConnectorRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /requests/connector [get]
func (h *ConnectorHandler) List(c *gin.Context) {
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

	c.JSON(http.StatusOK, resdto.FromConnectorRequestViews(views))
}

// @Summary Approve connector request
// @Description Approve a pending connector request and create the connector
// @Tags connector-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /requests/connector/{id}/approve [post]
func (h *ConnectorHandler) Approve(c *gin.Context) {
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

// @Summary Decline connector request
// @Description Decline a pending connector request
// @Tags connector-requests
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
// @Router /requests/connector/{id}/decline [post]
func (h *ConnectorHandler) Decline(c *gin.Context) {
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

func (h *ConnectorHandler) writeDecisionError(c *gin.Context, err error) {
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
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Connector creation failed, request remains pending", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
