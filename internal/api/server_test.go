package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naamkaran/internal/api"
	"naamkaran/internal/api/handler/v1handler"
	mocksuggestion "naamkaran/internal/suggestion/mock"
	"naamkaran/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServer_RequestTimeoutBoundsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocksuggestion.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]domain.Suggestion, error) {
			time.Sleep(200 * time.Millisecond)

			return nil, nil
		},
	).AnyTimes()

	server, err := api.NewServer(
		api.Deps{Deps: v1handler.Deps{Suggestions: svc}},
		api.Options{
			Addr:           ":0",
			ReadTimeout:    time.Minute,
			RequestTimeout: 20 * time.Millisecond,
			MetricsPath:    "/metrics",
		},
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"error":"request timed out"}`, rec.Body.String())
}

func TestNewServer_ServesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocksuggestion.NewMockService(ctrl)

	server, err := api.NewServer(
		api.Deps{Deps: v1handler.Deps{Suggestions: svc}},
		api.Options{
			Addr:           ":0",
			RequestTimeout: time.Second,
			MetricsPath:    "/metrics",
		},
	)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}