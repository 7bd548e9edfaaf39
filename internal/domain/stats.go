package domain

// SystemStats são os contadores do painel, calculados sob demanda.
// Cada contador vem de uma consulta independente; não há garantia de consistência entre eles.
type SystemStats struct {
	TotalWarehouses  int64 `json:"totalWarehouses" example:"2"`
	TotalYards       int64 `json:"totalYards" example:"2"`
	ActiveWarehouses int64 `json:"activeWarehouses" example:"2"`
	ActiveYards      int64 `json:"activeYards" example:"1"`
}
