package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Message  string `json:"message" example:"O campo 'name' é obrigatório."`
	Field    string `json:"field,omitempty" example:"name"`
	Category string `json:"category,omitempty" example:"VALIDATION_ERROR"`
}
