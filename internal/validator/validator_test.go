package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string   `json:"name" validate:"required,not-blank,max=10"`
	Email   string   `json:"email" validate:"required,email"`
	Price   *float64 `json:"price" validate:"required,gt=0"`
	Message string   `json:"message" validate:"omitempty,min=10"`
	Role    string   `json:"role" validate:"omitempty,is-user-role"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	price := 10.0
	negative := -1.0

	tests := []struct {
		name        string
		req         sampleRequest
		wantMessage string
	}{
		{
			name: "Valid request",
			req:  sampleRequest{Name: "Olie", Email: "a@example.dk", Price: &price, Role: "ADMIN"},
		},
		{
			name:        "Blank name and bad email",
			req:         sampleRequest{Name: "   ", Email: "not-an-email", Price: &price},
			wantMessage: "name: must not be blank, email: must be a valid email address",
		},
		{
			name:        "Missing price",
			req:         sampleRequest{Name: "Olie", Email: "a@example.dk"},
			wantMessage: "price: is required",
		},
		{
			name:        "Negative price",
			req:         sampleRequest{Name: "Olie", Email: "a@example.dk", Price: &negative},
			wantMessage: "price: must be positive",
		},
		{
			name:        "Short message and unknown role",
			req:         sampleRequest{Name: "Olie", Email: "a@example.dk", Price: &price, Message: "kort", Role: "GUEST"},
			wantMessage: "message: must be at least 10 characters long, role: must be ADMIN or USER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, vErr.Message())
		})
	}
}
