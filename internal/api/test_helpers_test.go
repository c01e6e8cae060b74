package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/healthlog/internal/db"
	"github.com/terraincognita07/healthlog/internal/i18n"
	"github.com/terraincognita07/healthlog/internal/security"
	"github.com/terraincognita07/healthlog/internal/state"
)

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

type testServer struct {
	app     *fiber.App
	tracker *state.Tracker
	key     []byte
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	database, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "healthlog-api-test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := state.New(db.NewStore(database),
		state.WithClock(func() time.Time { return testNow }),
		state.WithLogger(logger),
	)
	require.NoError(t, tracker.Initialize(ctx))

	manager, err := i18n.NewManager("en")
	require.NoError(t, err)

	key, err := security.SigningKey(strings.Repeat("k", security.MinSecretLength))
	require.NoError(t, err)

	handler, err := NewHandler(tracker, key, manager, logger)
	require.NoError(t, err)

	token, err := security.IssueToken(key, "test", time.Hour, time.Now())
	require.NoError(t, err)

	return &testServer{app: NewApp(handler), tracker: tracker, key: key, token: token}
}

func (server *testServer) do(t *testing.T, method string, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch value := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(value)
	default:
		encoded, err := json.Marshal(value)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+server.token)

	response, err := server.app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response, content
}

func decodeJSON[T any](t *testing.T, content []byte) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(content, &value), string(content))
	return value
}

func readAPIError(t *testing.T, content []byte) string {
	t.Helper()
	payload := decodeJSON[map[string]string](t, content)
	return payload["error"]
}
