package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/activity-calendar/internal/middlewares"
	"github.com/sbilibin2017/activity-calendar/internal/models"
	"github.com/sbilibin2017/activity-calendar/internal/services"
)

var alice = &models.Identity{UserID: 1, Username: "alice"}

// asUser puts identity into the request context the way AuthMiddleware does.
func asUser(identity *models.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity != nil {
				r = r.WithContext(middlewares.SetIdentityToContext(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func TestListActivitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityLister(ctrl)

	newRouter := func(identity *models.Identity) http.Handler {
		r := chi.NewRouter()
		r.With(asUser(identity)).Get("/api/activities/{year_month}", NewListActivitiesHandler(mockSvc))
		return r
	}

	t.Run("grouped by date", func(t *testing.T) {
		mockSvc.EXPECT().ListByMonth(gomock.Any(), int64(1), "2024-03").Return(map[string][]models.ActivitySummary{
			"2024-03-05": {{ID: 1, Type: "sport", Title: "run", Description: ""}},
		}, nil)

		w := httptest.NewRecorder()
		newRouter(alice).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activities/2024-03", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"2024-03-05":[{"id":1,"type":"sport","title":"run","description":""}]}`, w.Body.String())
	})

	t.Run("empty month", func(t *testing.T) {
		mockSvc.EXPECT().ListByMonth(gomock.Any(), int64(1), "1999-01").Return(map[string][]models.ActivitySummary{}, nil)

		w := httptest.NewRecorder()
		newRouter(alice).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activities/1999-01", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("no identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activities/2024-03", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().ListByMonth(gomock.Any(), int64(1), "2024-03").Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		newRouter(alice).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activities/2024-03", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", w.Body.String())
	})
}

func TestCreateActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityCreator(ctrl)

	tests := []struct {
		name         string
		identity     *models.Identity
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:     "created",
			identity: alice,
			body:     `{"date":"2024-03-05","type":"sport","title":"run","description":"5k"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64(1), models.NewActivity{
					Date: "2024-03-05", Type: "sport", Title: "run", Description: "5k",
				}).Return(int64(10), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: "Created",
		},
		{
			name:     "description optional",
			identity: alice,
			body:     `{"date":"2024-03-05","type":"note","title":"remember"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64(1), models.NewActivity{
					Date: "2024-03-05", Type: "note", Title: "remember",
				}).Return(int64(11), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: "Created",
		},
		{
			name:         "missing title",
			identity:     alice,
			body:         `{"date":"2024-03-05","type":"sport"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing fields",
		},
		{
			name:         "missing field wins over bad type",
			identity:     alice,
			body:         `{"date":"2024-03-05","type":"holiday"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing fields",
		},
		{
			name:         "invalid type",
			identity:     alice,
			body:         `{"date":"2024-03-05","type":"holiday","title":"beach"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid activity type",
		},
		{
			name:         "invalid JSON",
			identity:     alice,
			body:         `{`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid request body",
		},
		{
			name:     "service validation error",
			identity: alice,
			body:     `{"date":"2024-03-05","type":"sport","title":"run"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), services.ErrInvalidType)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid activity type",
		},
		{
			name:     "service error",
			identity: alice,
			body:     `{"date":"2024-03-05","type":"sport","title":"run"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
		{
			name:         "no identity",
			body:         `{"date":"2024-03-05","type":"sport","title":"run"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			r := chi.NewRouter()
			r.With(asUser(tt.identity)).Post("/api/activities", NewCreateActivityHandler(mockSvc))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/activities", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCreateActivityHandler_OwnerFromSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(int64(1), nil)

	body, err := json.Marshal(map[string]any{
		"date": "2024-03-05", "type": "meeting", "title": "sync", "user_id": 42,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.With(asUser(alice)).Post("/api/activities", NewCreateActivityHandler(mockSvc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockActivityDeleter(ctrl)

	newRouter := func(identity *models.Identity) http.Handler {
		r := chi.NewRouter()
		r.With(asUser(identity)).Delete("/api/activities/{id}", NewDeleteActivityHandler(mockSvc))
		return r
	}

	tests := []struct {
		name         string
		identity     *models.Identity
		path         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:     "deleted",
			identity: alice,
			path:     "/api/activities/7",
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Deleted",
		},
		{
			name:         "non integer id",
			identity:     alice,
			path:         "/api/activities/abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "service error",
			identity: alice,
			path:     "/api/activities/7",
			mockSetup: func() {
				mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(7)).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
		{
			name:         "no identity",
			path:         "/api/activities/7",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			newRouter(tt.identity).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
