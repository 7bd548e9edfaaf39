// Package respond concentra a escrita de respostas HTTP dos handlers: sucesso em JSON,
// erros tipados traduzidos por MapToHTTPStatus e leitura de parâmetros de caminho e corpo.
package respond

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

// MaxBodyBytes limita o tamanho dos corpos de escrita.
const MaxBodyBytes = 1 << 20

// Writer escreve respostas padronizadas e registra falhas no logger.
type Writer struct {
	Logger logger.Logger
}

func NewWriter(log logger.Logger) *Writer {
	return &Writer{Logger: log}
}

// Handle processa o resultado de uma chamada de serviço.
// Sem erro: escreve data em JSON com successStatus (204 não tem corpo).
// Com erro: traduz para status, categoria e mensagem pública.
func (rw *Writer) Handle(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		rw.Error(w, r, err)
		return
	}

	if successStatus == http.StatusNoContent || data == nil {
		w.WriteHeader(successStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
		rw.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// Error escreve o corpo {message, field?, category}. Detalhes internos ficam só no log.
func (rw *Writer) Error(w http.ResponseWriter, r *http.Request, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		rw.Logger.Error(fmt.Sprintf("Erro de Servidor: %s %s (%s)", r.Method, r.URL.Path, category), err)
	} else {
		rw.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path, "message": message})
	}

	body := domain.ErrorResponse{
		Message:  message,
		Field:    apperror.FieldOf(err),
		Category: category,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if jsonErr := json.NewEncoder(w).Encode(body); jsonErr != nil {
		rw.Logger.Error("Falha ao codificar JSON de erro", jsonErr)
	}
}

// PathID lê o parâmetro de caminho como inteiro positivo.
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewFieldValidationError(name,
			fmt.Sprintf("O parâmetro '%s' deve ser um inteiro positivo.", name))
	}
	return id, nil
}

// QueryID lê um parâmetro de query opcional como inteiro positivo (nil quando ausente).
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperror.NewFieldValidationError(name,
			fmt.Sprintf("O parâmetro '%s' deve ser um inteiro positivo.", name))
	}
	return &id, nil
}

// ReadBody lê o corpo da requisição respeitando MaxBodyBytes.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return body, nil
}
