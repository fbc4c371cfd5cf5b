package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		GodID:    1,
		Pseudo:   "Alito",
		Email:    "alito@example.com",
		Password: "pass1234!",
	}
}

func TestRegisterRequestValid(t *testing.T) {
	assert.NoError(t, validRegisterRequest().Validate())
}

func TestRegisterRequestFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
		field  string
	}{
		{"missing god", func(r *RegisterRequest) { r.GodID = 0 }, "god_id"},
		{"pseudo too short", func(r *RegisterRequest) { r.Pseudo = "Al" }, "pseudo"},
		{"pseudo too long", func(r *RegisterRequest) {
			r.Pseudo = "AbcdefghijAbcdefghijAbcdefghijX"
		}, "pseudo"},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"password too short", func(r *RegisterRequest) { r.Password = "ab1!" }, "password"},
		{"password without digit", func(r *RegisterRequest) { r.Password = "abcdefgh!" }, "password"},
		{"password without symbol", func(r *RegisterRequest) { r.Password = "abcdefgh1" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			details := ValidationDetails(err)
			require.NotNil(t, details)
			assert.Contains(t, details, tt.field)
		})
	}
}

func TestRegisterRequestMessagesAreFrench(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "abcdefgh"

	details := ValidationDetails(req.Validate())
	require.Contains(t, details, "password")
	assert.Equal(t, "Le mot de passe doit contenir au moins un chiffre et un caractère spécial.", details["password"])
}

func TestLoginRequestValidation(t *testing.T) {
	valid := LoginRequest{Pseudo: "Alito", Password: "pass1234!"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{}
	err := missing.Validate()
	require.Error(t, err)
	details := ValidationDetails(err)
	assert.Contains(t, details, "pseudo")
	assert.Contains(t, details, "password")
}

func TestValidationDetailsNonFieldError(t *testing.T) {
	assert.Nil(t, ValidationDetails(assert.AnError))
	assert.Nil(t, ValidationDetails(nil))
}
