package controller

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahatfaruk/pha12-meals-track-server/helper"
)

func newTestController(store *MockStore, payments helper.IntentCreator) *Controller {
	tokens := helper.NewTokenService("test-secret", helper.TokenTTL)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, tokens, payments, logger)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
