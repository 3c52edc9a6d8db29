package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/pkg/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/forecast?hospital_id=H1", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestError(t *testing.T) {
	errNotFound := stderrors.New("not found")
	mapping := ErrorMapping{errNotFound: errors.NewNotFoundHTTPError("Alert not found")}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "validation", err: errors.NewValidationError(400, "horizon", "must be positive"), wantStatus: 400, wantCode: 400},
		{name: "collector", err: errors.NewValidationErrorCollector().Add(errors.NewValidationError(400, "aqi")), wantStatus: 400, wantCode: ValidationErrorCode},
		{name: "http", err: errors.NewForbiddenHTTPError(), wantStatus: 403, wantCode: 403},
		{name: "mapped and wrapped", err: stderrors.Join(errNotFound, stderrors.New("ctx")), wantStatus: 404, wantCode: 404},
		{name: "unknown", err: stderrors.New("db down"), wantStatus: 500, wantCode: InternalServerErrorCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			ErrorWithMap(c, tt.err, mapping, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w).ErrorCode)
		})
	}
}

func TestOK(t *testing.T) {
	c, w := newTestContext()
	OK(c, map[string]int{"score": 42})

	r := decode(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MessageSuccess, r.Message)
	assert.Equal(t, map[string]any{"score": float64(42)}, r.Data)
}

func TestPanicError(t *testing.T) {
	c, w := newTestContext()
	PanicError(c, "nil map write", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, DefaultErrorMessage, decode(t, w).Message)
}

func TestSplitMessage(t *testing.T) {
	msg := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 25) + "\nc"

	chunks := splitMessage(msg, 12)

	assert.Equal(t, []string{
		strings.Repeat("a", 10),
		strings.Repeat("b", 12),
		strings.Repeat("b", 12),
		"b\nc",
	}, chunks)
	for _, ch := range chunks {
		assert.LessOrEqual(t, len(ch), 12)
	}
}
