package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want UserID
	}{
		{"integer", `{"user_id": 42}`, "42"},
		{"float with zero fraction", `{"user_id": 42.0}`, "42"},
		{"string", `{"user_id": "17"}`, "17"},
		{"null", `{"user_id": null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp AuthResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.want, resp.UserID)
		})
	}
}

func TestErrorBodyDetailText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail": "Invalid amount"}`, "Invalid amount"},
		{"field errors", `{"detail": [{"loc": ["body", "Title"], "msg": "field required"}, {"msg": "value is not a valid integer"}]}`, "field required, value is not a valid integer"},
		{"object detail", `{"detail": {"code": 7}}`, ""},
		{"missing detail", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body ErrorBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.want, body.DetailText())
		})
	}
}

func TestOptionalFieldsDecode(t *testing.T) {
	var c Collection
	require.NoError(t, json.Unmarshal([]byte(`{"CollectionID": 3, "CollectionName": "Apes", "CreatorID": 9, "CategoryID": null}`), &c))
	assert.Nil(t, c.CategoryID)

	var r Report
	require.NoError(t, json.Unmarshal([]byte(`{"ReportID": 1, "ReporterUsername": "bob", "NFTTitle": "x", "ReportedAt": "2024-01-02 10:00:00"}`), &r))
	assert.Nil(t, r.Reason)
}
