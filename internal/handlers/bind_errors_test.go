package handlers

import (
	"encoding/json"
	"net/url"
	"testing"

	"autoshop_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func TestJSONBindMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "Wrong field type", body: `{"name": "Syn", "price": "abc"}`, want: "price: must be a number"},
		{name: "String expected", body: `{"name": 42}`, want: "name: must be a string"},
		{name: "Truncated body", body: `{"name": `, want: malformedBodyMessage},
		{name: "Not JSON", body: `price=10`, want: malformedBodyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.ServiceRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			assert.Error(t, err)
			assert.Equal(t, tt.want, jsonBindMessage(err))
		})
	}
}

func TestQueryBindMessage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "Non numeric min", query: "min=abc&max=200", want: "min: must be a number"},
		{name: "Non numeric max", query: "min=10&max=lots", want: "max: must be a number"},
		{name: "Nothing to blame", query: "min=10&max=200", want: invalidQueryMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, queryBindMessage(values, &dto.PriceRangeQuery{}))
		})
	}
}
