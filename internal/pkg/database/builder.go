package database

import (
	"fmt"
	"strings"
)

// SetBuilder monta a cláusula SET de um UPDATE parcial com placeholders posicionais ($1, $2, ...).
type SetBuilder struct {
	columns []string
	args    []interface{}
}

// Add inclui a coluna com o valor informado.
func (b *SetBuilder) Add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.columns = append(b.columns, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Len devolve o número de colunas incluídas.
func (b *SetBuilder) Len() int {
	return len(b.columns)
}

// Build devolve "col1 = $1, col2 = $2" e os argumentos, já acrescidos de extra
// (tipicamente o id do WHERE). O placeholder do primeiro extra é len(colunas)+1.
func (b *SetBuilder) Build(extra ...interface{}) (string, []interface{}) {
	args := make([]interface{}, 0, len(b.args)+len(extra))
	args = append(args, b.args...)
	args = append(args, extra...)
	return strings.Join(b.columns, ", "), args
}

// LikePattern converte um termo de busca em padrão de substring para LIKE/ILIKE,
// escapando os curingas do próprio termo.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
