package therapists

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTherapists(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().ListTherapists(rec, httptest.NewRequest(http.MethodGet, "/api/therapists", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Therapists, 6)
	assert.Equal(t, "Dr. Arnav Singh", resp.Therapists[0].Name)
	assert.Equal(t, []string{"hi", "en", "gu"}, resp.Therapists[4].Languages)
}
