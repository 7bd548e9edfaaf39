package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

// Recoverer converte panics em 500 com a mensagem genérica.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error(fmt.Sprintf("Panic em %s %s", r.Method, r.URL.Path), fmt.Errorf("%v", rec))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(domain.ErrorResponse{
					Message:  apperror.GenericInternalMessage,
					Category: "INTERNAL_ERROR",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORS libera o acesso do front-end hospedado em outra origem. Com origin vazio nada é adicionado.
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Chain aplica os middlewares na ordem informada: o primeiro é o mais externo.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
