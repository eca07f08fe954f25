package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var openapi struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &openapi))
	assert.Equal(t, "2.0", openapi.Swagger)
	assert.Contains(t, openapi.Paths, "/api/vacancies")
	assert.Contains(t, openapi.Paths["/api/applications"], "post")
	assert.Contains(t, openapi.Paths, "/api/saved-jobs/{job_seeker_id}/{vacancy_id}")
}
