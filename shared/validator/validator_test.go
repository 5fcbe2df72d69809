package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oasis/shared/failure"
	"oasis/shared/validator"
)

type createGuestBody struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"fullName":"Jonas Schmedtmann","email":"jonas@example.com"}`,
		},
		{
			name:    "malformed json",
			body:    `{"fullName":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing required field",
			body:    `{"email":"jonas@example.com"}`,
			wantErr: "FullName is required",
		},
		{
			name:    "invalid email",
			body:    `{"fullName":"Jonas","email":"not-an-email"}`,
			wantErr: "Email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data createGuestBody
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("checked-in", "oneof=unconfirmed checked-in checked-out"))
	assert.Error(t, validator.ValidateVar("cancelled", "oneof=unconfirmed checked-in checked-out"))
}
