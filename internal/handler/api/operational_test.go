//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/handler/api"
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
	"github.com/Pruthvi98/klaw/tests/common/builder"
	"github.com/Pruthvi98/klaw/tests/common/httptest"
	"github.com/Pruthvi98/klaw/tests/common/testutil"
	commandsmock "github.com/Pruthvi98/klaw/tests/mock/commands"
	queriesmock "github.com/Pruthvi98/klaw/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OperationalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOperationalCommands
	mockQueries  *queriesmock.MockOperationalQueries
	handler      *api.OperationalHandler

	actor usecase.ActorContext
}

func (s *OperationalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOperationalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOperationalQueries(s.mockCtrl)
	s.handler = api.NewOperationalHandler(s.mockCommands, s.mockQueries)

	s.actor = builder.NewUserBuilder().BuildActor()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.POST("/requests/operational", authMiddleware, s.handler.Create)
	s.router.GET("/requests/operational", authMiddleware, s.handler.List)
	s.router.POST("/requests/operational/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/requests/operational/:id/decline", authMiddleware, s.handler.Decline)
}

func (s *OperationalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOperationalHandlerSuite(t *testing.T) {
	suite.Run(t, new(OperationalHandlerTestSuite))
}

type testCaseOperational struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OperationalHandlerTestSuite) TestCreate() {
	url := "/requests/operational"

	reqBody := builder.NewRequestBuilder().BuildDTO()
	expectedResult := &commands.CreateRequestResult{RequestID: uuid.New()}

	validation := []testCaseOperational{
		{name: "missing field: environment (required)", mutate: testutil.Field("environment", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: topicName (required)", mutate: testutil.Field("topicName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: offsetResetType (required)", mutate: testutil.Field("offsetResetType", nil), expectCode: http.StatusBadRequest},
		{name: "unknown offset reset type", mutate: testutil.Field("offsetResetType", "TO_RANDOM"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateOffsetResetRequest(gomock.Any(), s.actor, gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.RequestID.String(), body["requestId"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "actor lacks permission",
				commandsError:  auth.ErrNotAuthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not authorized",
			},
			{
				name:           "consumer group not owned by team",
				commandsError:  commands.ErrTargetNotAccessible,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Team does not own this consumer group",
			},
			{
				name:           "duplicate pending request",
				commandsError:  commands.ErrDuplicateRequest,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "pending request already exists",
			},
			{
				name:           "missing reset timestamp",
				commandsError:  request.ErrMissingResetTimestamp,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "reset timestamp is required",
			},
			{
				name:           "store failure",
				commandsError:  commands.ErrStoreFailure,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOffsetResetRequest(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OperationalHandlerTestSuite) TestList() {
	url := "/requests/operational"

	s.Run("success: returns listed requests with pagination metadata", func() {
		view := &queries.OperationalRequestView{
			ID:            uuid.New(),
			RequestType:   request.TypeResetConsumerOffsets,
			Status:        request.StatusCreated,
			Requestor:     s.actor.Username,
			Environment:   "DEV",
			TopicName:     "payments.events",
			ConsumerGroup: "payments-consumer",
			Editable:      true,
			Deletable:     true,
			CurrentPage:   1,
			TotalPages:    1,
			AllPageNos:    []int{1},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, gomock.Any(), queries.OrderDescRequestedTime, 1).
			Return([]*queries.OperationalRequestView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID.String(), body[0]["id"])
		s.Equal("created", body[0]["requestStatus"])
		s.Equal(true, body[0]["editable"])
		s.Equal(float64(1), body[0]["totalNoPages"])
	})

	s.Run("success: passes filters through to the query layer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, gomock.Any(), queries.OrderAscRequestedTime, 2).
			DoAndReturn(func(_ any, _ usecase.ActorContext, filter queries.RequestFilter, _ queries.SortOrder, _ int) ([]*queries.OperationalRequestView, error) {
				s.Require().NotNil(filter.Environment)
				s.Equal("DEV", *filter.Environment)
				s.True(filter.MineOnly)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?env=DEV&isMyRequest=true&order=ASC_REQUESTED_TIME&pageNo=2", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on unknown sort order", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?order=SIDEWAYS", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *OperationalHandlerTestSuite) TestApprove() {
	id := uuid.New()
	url := "/requests/operational/" + id.String() + "/approve"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ApproveRequest(gomock.Any(), s.actor, id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/requests/operational/not-a-uuid/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "request not found",
				commandsError:  commands.ErrRequestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Request not found",
			},
			{
				name:           "already decided",
				commandsError:  request.ErrAlreadyDecided,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already been decided",
			},
			{
				name:           "self approval",
				commandsError:  request.ErrSelfApprovalForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "cannot approve their own request",
			},
			{
				name:           "cluster execution failed",
				commandsError:  commands.ErrExecutionFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "request remains pending",
			},
			{
				name:           "not an approver",
				commandsError:  auth.ErrNotAuthorized,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not authorized",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApproveRequest(gomock.Any(), s.actor, id).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecline
// ================================================================================

func (s *OperationalHandlerTestSuite) TestDecline() {
	id := uuid.New()
	url := "/requests/operational/" + id.String() + "/decline"

	s.Run("success: returns 204 and forwards the reason", func() {
		s.mockCommands.EXPECT().DeclineRequest(gomock.Any(), s.actor, id, "not in this release").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"reason": "not in this release"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().DeclineRequest(gomock.Any(), s.actor, id, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already decided", func() {
		s.mockCommands.EXPECT().DeclineRequest(gomock.Any(), s.actor, id, "").
			Return(request.ErrAlreadyDecided).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been decided")
	})
}
