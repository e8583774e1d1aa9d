package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/CurtisFaughnan/Lanyard-APP-WEB/pkg/errors"
)

func TestErrorRendersMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{appErrors.ErrMissingStudentID, http.StatusBadRequest, "Missing student ID"},
		{appErrors.NotFound("9"), http.StatusNotFound, "Student 9 not found"},
		{appErrors.ErrConfiguration, http.StatusInternalServerError, "Google credentials not loaded"},
		{errors.New("sheet exploded"), http.StatusInternalServerError, "sheet exploded"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		Error(c, tc.err)

		assert.Equal(t, tc.status, rec.Code)
		var body ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.body, body.Error)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	}
}
