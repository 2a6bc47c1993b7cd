package validation_test

import (
	"testing"

	"github.com/SscSPs/costureira_pro/internal/utils/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Value    decimal.Decimal  `binding:"gte=0"`
	Discount *decimal.Decimal `binding:"omitempty,gte=0"`
}

func TestRegisterValidators_DecimalGte(t *testing.T) {
	require.NoError(t, validation.RegisterValidators())
	require.NoError(t, validation.RegisterValidators(), "second registration is a no-op")

	assert.NoError(t, binding.Validator.ValidateStruct(priced{Value: decimal.RequireFromString("120.00")}))
	assert.NoError(t, binding.Validator.ValidateStruct(priced{Value: decimal.Zero}))
	assert.Error(t, binding.Validator.ValidateStruct(priced{Value: decimal.RequireFromString("-0.01")}))

	negative := decimal.RequireFromString("-5")
	assert.Error(t, binding.Validator.ValidateStruct(priced{Value: decimal.Zero, Discount: &negative}))
}
