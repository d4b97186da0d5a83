package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"cruisevoyager/shared/failure"
	"cruisevoyager/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingPayload struct {
	CruiseID string `json:"cruiseId" validate:"required"`
	Guests   int    `json:"numberOfGuests" validate:"required,min=1,max=10"`
	Email    string `json:"contactEmail" validate:"required,email"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"cruiseId":"abc","numberOfGuests":2,"contactEmail":"guest@example.com"}`)

	var payload bookingPayload
	err := validator.Validate(body, &payload)

	require.NoError(t, err)
	assert.Equal(t, "abc", payload.CruiseID)
	assert.Equal(t, 2, payload.Guests)
}

func TestValidateRejectsInvalidJSON(t *testing.T) {
	body := strings.NewReader(`{"cruiseId":`)

	var payload bookingPayload
	err := validator.Validate(body, &payload)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateRejectsOutOfRangeGuests(t *testing.T) {
	body := strings.NewReader(`{"cruiseId":"abc","numberOfGuests":11,"contactEmail":"guest@example.com"}`)

	var payload bookingPayload
	err := validator.Validate(body, &payload)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "less than or equal to 10")
}

func TestValidateRejectsBadEmail(t *testing.T) {
	body := strings.NewReader(`{"cruiseId":"abc","numberOfGuests":1,"contactEmail":"not-an-email"}`)

	var payload bookingPayload
	err := validator.Validate(body, &payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email address")
}
