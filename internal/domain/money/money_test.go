//go:build unit

package money_test

import (
	"testing"

	"bengkel-service/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := money.Parse("150000.005")
	require.NoError(t, err)
	assert.Equal(t, "150000.01", m.String())

	_, err = money.Parse("-1")
	require.ErrorIs(t, err, money.ErrNegativeAmount)

	_, err = money.Parse("seratus")
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestArithmetic(t *testing.T) {
	unit := money.FromInt(50000)
	assert.True(t, unit.Mul(3).Equal(money.FromInt(150000)))
	assert.True(t, money.Sum(unit, unit.Mul(2)).Equal(money.FromInt(150000)))
	assert.True(t, money.Sum().IsZero())
	assert.Equal(t, int64(150000), money.FromInt(150000).Rupiah())
}
