package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/attendance-backend-go/internal/pkg/validator"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:       "Jordan Lee",
		Email:      "jordan@example.com",
		Password:   "secret1",
		Department: "Engineering",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())

	req = validRegisterRequest()
	req.Role = "manager"
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"empty name", func(r *RegisterRequest) { r.Name = " " }, "name"},
		{"short name", func(r *RegisterRequest) { r.Name = "A" }, "name"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }, "password"},
		{"unknown department", func(r *RegisterRequest) { r.Department = "Astronomy" }, "department"},
		{"unknown role", func(r *RegisterRequest) { r.Role = "admin" }, "role"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRegisterRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "jordan@example.com", Password: "secret1"}
	assert.NoError(t, req.Validate())

	req = LoginRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}
