//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHistory(t *testing.T, raw string) request.CreateHistoryRequest {
	t.Helper()
	var req request.CreateHistoryRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return req
}

func TestCreateHistoryRequestToSpec(t *testing.T) {
	serviceID := uuid.New()
	sparepartID := uuid.New()

	t.Run("flat form without quantity is one unit", func(t *testing.T) {
		req := decodeHistory(t, `{"service_id":"`+serviceID.String()+`","harga":"150000"}`)

		spec, err := req.ToSpec()
		require.NoError(t, err)
		single, ok := spec.(history.Single)
		require.True(t, ok)
		assert.Equal(t, 1, single.Item.Quantity)
		assert.Equal(t, catalog.KindService, single.Item.Kind)
	})

	t.Run("items keep their explicit quantities", func(t *testing.T) {
		req := decodeHistory(t, `{"items":[{"service_id":"`+serviceID.String()+`"},{"sparepart_id":"`+sparepartID.String()+`","quantity":3}]}`)

		spec, err := req.ToSpec()
		require.NoError(t, err)
		many, ok := spec.(history.Many)
		require.True(t, ok)
		require.Len(t, many.Items, 2)
		assert.Equal(t, 1, many.Items[0].Quantity)
		assert.Equal(t, 3, many.Items[1].Quantity)
	})

	errCases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{
			name:  "flat form with explicit zero quantity",
			raw:   `{"service_id":"` + serviceID.String() + `","quantity":0,"harga":"150000"}`,
			errIs: history.ErrInvalidQuantity,
		},
		{
			name:  "item with explicit zero quantity",
			raw:   `{"items":[{"sparepart_id":"` + sparepartID.String() + `","quantity":0}]}`,
			errIs: history.ErrInvalidQuantity,
		},
		{
			name:  "both shapes",
			raw:   `{"service_id":"` + serviceID.String() + `","items":[{"sparepart_id":"` + sparepartID.String() + `"}]}`,
			errIs: request.ErrMixedLineItemShapes,
		},
		{
			name:  "item with both references",
			raw:   `{"items":[{"service_id":"` + serviceID.String() + `","sparepart_id":"` + sparepartID.String() + `"}]}`,
			errIs: request.ErrAmbiguousReference,
		},
		{
			name:  "item with no reference",
			raw:   `{"items":[{"quantity":2}]}`,
			errIs: history.ErrMissingItemReference,
		},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			req := decodeHistory(t, tc.raw)

			_, err := req.ToSpec()
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
