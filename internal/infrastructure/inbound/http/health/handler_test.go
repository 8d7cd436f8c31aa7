package health_http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/infrastructure/logger"
)

func TestPingers_Ping(t *testing.T) {
	ok := PingerFunc(func(ctx context.Context) error { return nil })
	down := PingerFunc(func(ctx context.Context) error { return errors.New("redis down") })

	tests := []struct {
		name    string
		pingers Pingers
		wantErr bool
	}{
		{name: "Empty", pingers: Pingers{}},
		{name: "All healthy", pingers: Pingers{ok, ok}},
		{name: "One failing", pingers: Pingers{ok, down}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pingers.Ping(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHandler_ReadyChecksEveryDependency(t *testing.T) {
	store := PingerFunc(func(ctx context.Context) error { return nil })
	cache := PingerFunc(func(ctx context.Context) error { return errors.New("redis down") })

	app := fiber.New()
	NewHandler(Pingers{store, cache}, logger.New("test")).Register(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
