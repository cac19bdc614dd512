package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSuccess_DefaultMessage(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Success(c, http.StatusOK, map[string]any{"ok": true}, ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, http.StatusOK, body.Code)
	assert.Equal(t, "Operação realizada com sucesso", body.Message)
	assert.Nil(t, body.Error)
}

func TestError_DefaultMessage(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Error(c, http.StatusBadGateway, "STORE_UNAVAILABLE", "", ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, http.StatusBadGateway, body.Code)
	assert.Equal(t, "Não foi possível completar a operação", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Error.Code)
}

func TestError_ExplicitMessageKept(t *testing.T) {
	c, rec := newContext(t)

	require.NoError(t, Error(c, http.StatusNotFound, "REQUEST_NOT_FOUND", "Pedido não encontrado", ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Pedido não encontrado", body.Message)
}
