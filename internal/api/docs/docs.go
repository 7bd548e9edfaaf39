// Package docs gera o documento Swagger 2.0 a partir das declarações de rota do contrato
// e o registra no swag, de onde o http-swagger o serve em /swagger/doc.json.
package docs

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/swaggo/swag"

	"goyard/internal/contract"
)

// Title e Version aparecem no cabeçalho do Swagger UI.
const (
	Title   = "GoYard API"
	Version = "1.0"
)

var timeType = reflect.TypeOf(time.Time{})

type document struct {
	json string
}

func (d document) ReadDoc() string { return d.json }

var registerOnce sync.Once

// Register gera o documento do contrato informado e o registra como instância padrão do swag.
// Chamadas seguintes não têm efeito.
func Register(c contract.Contract) {
	registerOnce.Do(func() {
		raw, err := json.Marshal(Build(c))
		if err != nil {
			// Build só produz mapas e slices serializáveis.
			panic(err)
		}
		swag.Register(swag.Name, document{json: string(raw)})
	})
}

// Build monta o documento Swagger 2.0.
func Build(c contract.Contract) map[string]interface{} {
	definitions := map[string]interface{}{}
	paths := map[string]map[string]interface{}{}

	for _, route := range c.Routes() {
		path := contract.MuxPath(route.Path)
		if paths[path] == nil {
			paths[path] = map[string]interface{}{}
		}
		paths[path][strings.ToLower(route.Method)] = operation(route, definitions)
	}

	return map[string]interface{}{
		"swagger": "2.0",
		"info": map[string]interface{}{
			"title":       Title,
			"version":     Version,
			"description": "Administração de armazéns e pátios de armazenagem.",
		},
		"basePath":    "/",
		"schemes":     []string{"http"},
		"consumes":    []string{"application/json"},
		"produces":    []string{"application/json"},
		"paths":       paths,
		"definitions": definitions,
	}
}

func operation(route contract.Route, definitions map[string]interface{}) map[string]interface{} {
	var params []map[string]interface{}
	for _, name := range route.PathParams() {
		params = append(params, map[string]interface{}{
			"name": name, "in": "path", "required": true, "type": "integer", "format": "int64",
		})
	}
	for _, q := range route.Query {
		params = append(params, map[string]interface{}{
			"name": q.Name, "in": "query", "required": false, "type": q.Type, "description": q.Description,
		})
	}
	if route.Input != nil {
		params = append(params, map[string]interface{}{
			"name": "body", "in": "body", "required": true,
			"schema": schemaFor(reflect.TypeOf(route.Input), definitions),
		})
	}

	responses := map[string]interface{}{}
	for status, resp := range route.Responses {
		entry := map[string]interface{}{"description": resp.Description}
		if resp.Body != nil {
			entry["schema"] = schemaFor(reflect.TypeOf(resp.Body), definitions)
		}
		responses[strconv.Itoa(status)] = entry
	}

	op := map[string]interface{}{
		"operationId": route.Name,
		"summary":     route.Summary,
		"tags":        []string{route.Tag},
		"responses":   responses,
	}
	if len(params) > 0 {
		op["parameters"] = params
	}
	if route.Produces != "" {
		op["produces"] = []string{route.Produces}
	}
	return op
}

// schemaFor descreve um tipo Go. Structs nomeadas viram definições referenciadas por $ref.
func schemaFor(t reflect.Type, definitions map[string]interface{}) map[string]interface{} {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == timeType {
		return map[string]interface{}{"type": "string", "format": "date-time"}
	}

	// domain.Optional[T]: documentado como T anulável.
	if t.Kind() == reflect.Struct && strings.HasPrefix(t.Name(), "Optional[") {
		if f, ok := t.FieldByName("Value"); ok {
			s := schemaFor(f.Type, definitions)
			s["x-nullable"] = true
			return s
		}
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]interface{}{"type": "string"}
	case reflect.Bool:
		return map[string]interface{}{"type": "boolean"}
	case reflect.Int, reflect.Int32:
		return map[string]interface{}{"type": "integer"}
	case reflect.Int64:
		return map[string]interface{}{"type": "integer", "format": "int64"}
	case reflect.Slice, reflect.Array:
		return map[string]interface{}{"type": "array", "items": schemaFor(t.Elem(), definitions)}
	case reflect.Struct:
		name := t.String()
		if _, seen := definitions[name]; !seen {
			definitions[name] = nil // evita recursão infinita
			definitions[name] = structSchema(t, definitions)
		}
		return map[string]interface{}{"$ref": "#/definitions/" + name}
	default:
		return map[string]interface{}{}
	}
}

func structSchema(t reflect.Type, definitions map[string]interface{}) map[string]interface{} {
	properties := map[string]interface{}{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		prop := schemaFor(field.Type, definitions)
		if field.Type.Kind() == reflect.Ptr {
			prop["x-nullable"] = true
		}
		if example := field.Tag.Get("example"); example != "" {
			prop["example"] = example
		}
		properties[name] = prop
	}
	return map[string]interface{}{"type": "object", "properties": properties}
}
