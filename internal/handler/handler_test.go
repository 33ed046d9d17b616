package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/openshelf/circulation/internal/errs"
	"github.com/openshelf/circulation/internal/handler"
	"github.com/openshelf/circulation/internal/model"
	"github.com/openshelf/circulation/pkg/validate"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/openshelf/circulation/internal/handler/mocks"
)

func withActor(actor model.Actor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("actor", actor)
			return next(c)
		}
	}
}

func TestHandler_PlaceHold(t *testing.T) {
	t.Parallel()
	actor := model.Actor{DocID: "m1", DisplayID: "MID-0001", Name: "Ana Reyes", Role: model.RoleMember}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookDocId":"b1"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PlaceHold(gomock.Any(), actor, "b1").
					Return("h1", nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"docId":"h1"}`,
			},
		},
		{
			name:         "err. bookDocId required",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. not available",
			body: `{"bookDocId":"b1"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PlaceHold(gomock.Any(), actor, "b1").
					Return("", errs.ErrNotAvailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is not available"}`,
			},
		},
		{
			name: "err. already held",
			body: `{"bookDocId":"b1"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PlaceHold(gomock.Any(), actor, "b1").
					Return("", errs.ErrAlreadyHeld)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"member already has an active hold"}`,
			},
		},
		{
			name: "err. book missing",
			body: `{"bookDocId":"nope"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PlaceHold(gomock.Any(), actor, "nope").
					Return("", errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/holds", h.PlaceHold, withActor(actor))

			r := httptest.NewRequest(http.MethodPost, "/holds", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveRequest(t *testing.T) {
	t.Parallel()
	admin := model.Actor{DocID: "a1", DisplayID: "MID-0001", Name: "Sam Admin", Role: model.RoleAdmin}
	member := model.Actor{DocID: "m1", DisplayID: "MID-0002", Name: "Ana Reyes", Role: model.RoleMember}

	threeWindows := `[{"date":"2024-03-02","startTime":"10:00","endTime":"11:00"},` +
		`{"date":"2024-03-03","startTime":"10:00","endTime":"11:00"},` +
		`{"date":"2024-03-04","startTime":"10:00","endTime":"11:00"}]`

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		actor        model.Actor
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			actor: admin,
			body:  `{"pickupWindows":` + threeWindows + `,"pickupNotes":"side door"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveRequest(gomock.Any(), admin, "r1", gomock.Len(3), "side door").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
			},
		},
		{
			name:         "err. too few windows rejected by validator",
			actor:        admin,
			body:         `{"pickupWindows":[{"date":"2024-03-02","startTime":"10:00","endTime":"11:00"}]}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:  "err. forbidden",
			actor: member,
			body:  `{"pickupWindows":` + threeWindows + `}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveRequest(gomock.Any(), member, "r1", gomock.Len(3), "").
					Return(errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"operation not permitted for this role"}`,
			},
		},
		{
			name:  "err. not pending",
			actor: admin,
			body:  `{"pickupWindows":` + threeWindows + `}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ApproveRequest(gomock.Any(), admin, "r1", gomock.Len(3), "").
					Return(errs.ErrNotPending)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"request is no longer pending"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/checkout-requests/:id/approve", h.ApproveRequest, withActor(tt.actor))

			r := httptest.NewRequest(http.MethodPost, "/checkout-requests/r1/approve", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CompleteRequest(t *testing.T) {
	t.Parallel()
	admin := model.Actor{DocID: "a1", DisplayID: "MID-0001", Name: "Sam Admin", Role: model.RoleAdmin}

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockCirculationService(c)
	svc.EXPECT().
		CompleteRequest(gomock.Any(), admin, "r1").
		Return("TID-0001", nil)

	h := handler.New(svc, zap.NewExample().Named("test"))
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/checkout-requests/:id/complete", h.CompleteRequest, withActor(admin))

	r := httptest.NewRequest(http.MethodPost, "/checkout-requests/r1/complete", http.NoBody)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"transactionId":"TID-0001"}`, strings.Trim(w.Body.String(), "\n"))
}
