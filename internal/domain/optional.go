package domain

import (
	"bytes"
	"encoding/json"
)

// Optional representa um campo anulável de uma atualização parcial.
// Distingue três estados: ausente (Set=false), null explícito (Null=true) e valor.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some cria um Optional com valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null cria um Optional com null explícito.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// IsZero permite o uso de `omitzero` nas tags JSON: campos ausentes não são serializados.
func (o Optional[T]) IsZero() bool { return !o.Set }

// HasValue informa se o campo veio com um valor não nulo.
func (o Optional[T]) HasValue() bool { return o.Set && !o.Null }

// Ptr devolve o valor como ponteiro (nil quando ausente ou nulo).
func (o Optional[T]) Ptr() *T {
	if !o.HasValue() {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON só é chamado quando a chave está presente no payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
