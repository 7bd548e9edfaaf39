// Package schema valida os payloads de criação e atualização parcial de armazéns e pátios,
// independente das camadas de transporte e persistência.
package schema

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
)

const invalidPayloadMessage = "Payload inválido. Verifique o formato JSON."

var (
	createValidator = newValidator("create")
	updateValidator = newValidator("update")
)

// newValidator monta um validador que lê as regras da tag indicada e reporta
// os campos pelo nome JSON.
func newValidator(tag string) *validator.Validate {
	v := validator.New()
	v.SetTagName(tag)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejeita strings vazias ou só com espaços.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// nonul rejeita o caractere NUL, que o PostgreSQL não aceita em TEXT.
	_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})

	_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return domain.Status(fl.Field().String()).Valid()
	})

	// Optional[string] é validado pelo valor quando presente; ausente ou null é tratado como vazio.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if o, ok := field.Interface().(domain.Optional[string]); ok && o.HasValue() {
			return o.Value
		}
		return nil
	}, domain.Optional[string]{})

	// warehouseId presente precisa ser >= 1, inclusive o zero.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(yardPayload)
		if p.WarehouseID.HasValue() && p.WarehouseID.Value < 1 {
			sl.ReportError(p.WarehouseID.Value, "warehouseId", "WarehouseID", "min", "1")
		}
	}, yardPayload{})

	return v
}

// decode interpreta o payload JSON. Números em string e números fracionários
// são rejeitados pelo próprio decoder nos campos inteiros.
func decode(payload []byte, dst interface{}) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = []byte("{}")
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return apperror.NewFieldValidationError(typeErr.Field,
				fmt.Sprintf("O campo '%s' deve ser do tipo %s.", typeErr.Field, describeKind(typeErr.Type)))
		}
		return apperror.NewValidationError(invalidPayloadMessage)
	}
	return nil
}

// check executa as regras e converte o primeiro erro encontrado em ValidationError.
func check(v *validator.Validate, payload interface{}) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperror.NewValidationError(invalidPayloadMessage)
	}

	first := validationErrs[0]
	return apperror.NewFieldValidationError(first.Field(), messageFor(first))
}

// messageFor traduz a regra violada em uma mensagem legível.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo '%s' é obrigatório.", field)
	case "notblank":
		return fmt.Sprintf("O campo '%s' não pode ser vazio.", field)
	case "min":
		return fmt.Sprintf("O campo '%s' deve ser maior ou igual a %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("O campo '%s' deve ser menor ou igual a %s.", field, fe.Param())
	case "status":
		return fmt.Sprintf("O campo '%s' deve ser um dos valores: %s, %s.", field, domain.StatusActive, domain.StatusInactive)
	case "nonul":
		return fmt.Sprintf("O campo '%s' contém caracteres inválidos.", field)
	default:
		return fmt.Sprintf("O campo '%s' é inválido.", field)
	}
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "válido"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "inteiro"
	case reflect.String:
		return "texto"
	default:
		return t.Kind().String()
	}
}

func statusOrDefault(s *string) domain.Status {
	if s == nil {
		return domain.StatusActive
	}
	return domain.Status(*s)
}

func statusPtr(s *string) *domain.Status {
	if s == nil {
		return nil
	}
	st := domain.Status(*s)
	return &st
}
