package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"exact pages", 1, 20, 40, 2},
		{"partial last page", 2, 20, 45, 3},
		{"empty", 1, 20, 0, 0},
		{"no limit", 1, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
		})
	}
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	Attachment(w, "payroll-2024-03.csv", "text/csv", []byte("SR,NET\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payroll-2024-03.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "7", w.Header().Get("Content-Length"))
	assert.Equal(t, "SR,NET\n", w.Body.String())
}

func TestHTML(t *testing.T) {
	w := httptest.NewRecorder()
	HTML(w, []byte("<p>slip</p>"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>slip</p>", w.Body.String())
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.Join(errors.New("lookup"), payroll.ErrPayrollRecordNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}
