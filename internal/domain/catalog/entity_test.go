//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	item, err := catalog.NewService("  Tune   up ", money.FromInt(150000), time.Now())
	require.NoError(t, err)
	assert.Equal(t, catalog.KindService, item.Kind())
	assert.Equal(t, "Tune up", item.Name())
	assert.Empty(t, item.Code())

	_, err = catalog.NewService("T", money.FromInt(1), time.Now())
	require.ErrorIs(t, err, catalog.ErrInvalidItemName)
}

func TestNewSparepart(t *testing.T) {
	item, err := catalog.NewSparepart(" oli-1l ", "Oli mesin 1L", money.FromInt(50000), time.Now())
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSparepart, item.Kind())
	assert.Equal(t, "OLI-1L", item.Code())

	_, err = catalog.NewSparepart("oli 1l", "Oli mesin 1L", money.FromInt(50000), time.Now())
	require.ErrorIs(t, err, catalog.ErrInvalidPartCode)
}

func TestNewKind(t *testing.T) {
	k, err := catalog.NewKind("SPAREPART")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindSparepart, k)

	_, err = catalog.NewKind("service")
	require.ErrorIs(t, err, catalog.ErrInvalidKind)
}
