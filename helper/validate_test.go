package helper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
)

func TestValidateStruct_Reservation(t *testing.T) {
	req := models.CreateReservationRequest{
		Table:          "65f0c0ffee0000000000abcd",
		Date:           "2024-05-10",
		Time:           "7:30",
		NumberOfGuests: 0,
	}

	err := ValidateStruct("reservations.Create", req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "time must be HH:MM")
	assert.Contains(t, err.Error(), "numberOfGuests is required")
}

func TestValidateStruct_DurationBounds(t *testing.T) {
	req := models.CreateReservationRequest{
		Table: "t", Date: "2024-05-10", Time: "19:00", NumberOfGuests: 2, Duration: 500,
	}
	err := ValidateStruct("reservations.Create", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration must be at most 480")

	req.Duration = 0
	assert.NoError(t, ValidateStruct("reservations.Create", req))
}

func TestValidateStruct_MenuItemPrice(t *testing.T) {
	negative := -1.0
	zero := 0.0

	err := ValidateStruct("menu.Create", models.MenuItemRequest{Name: "Soup", Category: "Starters", Price: &negative})
	assert.True(t, apperr.IsValidation(err))

	assert.NoError(t, ValidateStruct("menu.Create", models.MenuItemRequest{Name: "Water", Category: "Drinks", Price: &zero}))

	err = ValidateStruct("menu.Create", models.MenuItemRequest{Name: "Soup", Category: "Starters"})
	assert.Contains(t, err.Error(), "price is required")
}

func TestValidateStruct_OrderLinesDive(t *testing.T) {
	req := models.PlaceOrderRequest{
		Items:       []models.OrderLineRequest{{MenuItem: "x", Quantity: 0}},
		OrderType:   models.OrderTakeaway,
		PaymentType: models.PaymentCash,
	}
	err := ValidateStruct("orders.Place", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")

	req.OrderType = "Drone"
	req.Items[0].Quantity = 1
	err = ValidateStruct("orders.Place", req)
	assert.Contains(t, err.Error(), "orderType must be one of")
}

func TestDecodeAndValidate(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope","password":"x"}`))
	var body models.LoginRequest
	err := DecodeAndValidate(r, "auth.Login", &body)
	assert.True(t, apperr.IsValidation(err))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{bad`))
	err = DecodeAndValidate(r, "auth.Login", &body)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Invalid request body", apperr.Message(err, ""))
}
