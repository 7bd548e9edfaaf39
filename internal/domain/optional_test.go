package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goyard/internal/domain"
)

func TestOptional_UnmarshalStates(t *testing.T) {
	var payload struct {
		Notes domain.Optional[string] `json:"notes"`
		Ref   domain.Optional[int64]  `json:"ref"`
		Other domain.Optional[string] `json:"other"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"notes":"kho lạnh","ref":null}`), &payload))

	assert.True(t, payload.Notes.HasValue())
	assert.Equal(t, "kho lạnh", payload.Notes.Value)
	assert.True(t, payload.Ref.Set)
	assert.True(t, payload.Ref.Null)
	assert.Nil(t, payload.Ref.Ptr())
	assert.False(t, payload.Other.Set)
}

func TestOptional_MarshalOmitsAbsentFields(t *testing.T) {
	name := "Kho Mới"
	patch := domain.WarehousePatch{Name: &name}

	data, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Kho Mới"}`, string(data))

	patch.Notes = domain.Null[string]()
	data, err = json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Kho Mới","notes":null}`, string(data))
}

func TestOptional_Ptr(t *testing.T) {
	v := domain.Some[int64](7).Ptr()
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	assert.Nil(t, domain.Null[int64]().Ptr())
	assert.Nil(t, domain.Optional[int64]{}.Ptr())
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.WarehousePatch{}.IsEmpty())
	assert.False(t, domain.WarehousePatch{Notes: domain.Null[string]()}.IsEmpty())
	assert.True(t, domain.YardPatch{}.IsEmpty())
	assert.False(t, domain.YardPatch{WarehouseID: domain.Some[int64](1)}.IsEmpty())
}
