// Package report gera a planilha de exportação de armazéns e pátios.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"goyard/internal/domain"
)

const (
	SummarySheet    = "Resumo"
	WarehousesSheet = "Armazéns"
	YardsSheet      = "Pátios"

	// MissingWarehouse é exibido quando o pátio não tem armazém ou aponta para um removido.
	MissingWarehouse = "N/A"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var warehouseHeader = []string{"ID", "Código", "Nome", "Endereço", "Área (m²)", "Capacidade", "Status", "Responsável", "Observações", "Criado em"}

var yardHeader = []string{"ID", "Código", "Nome", "Armazém", "Área (m²)", "Tipo", "Status", "Observações", "Criado em"}

// Facilities reúne os dados de uma exportação.
type Facilities struct {
	Stats       domain.SystemStats
	Warehouses  []domain.Warehouse
	Yards       []domain.Yard
	GeneratedAt time.Time
}

// BuildFacilitiesWorkbook gera o arquivo XLSX com as abas Resumo, Armazéns e Pátios.
func BuildFacilitiesWorkbook(data Facilities) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A aba padrão "Sheet1" vira o resumo.
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("falha ao renomear aba padrão: %w", err)
	}
	if _, err := f.NewSheet(WarehousesSheet); err != nil {
		return nil, fmt.Errorf("falha ao criar aba %s: %w", WarehousesSheet, err)
	}
	if _, err := f.NewSheet(YardsSheet); err != nil {
		return nil, fmt.Errorf("falha ao criar aba %s: %w", YardsSheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao criar estilo do cabeçalho: %w", err)
	}

	summary := [][]interface{}{
		{"Indicador", "Valor"},
		{"Total de armazéns", data.Stats.TotalWarehouses},
		{"Armazéns ativos", data.Stats.ActiveWarehouses},
		{"Total de pátios", data.Stats.TotalYards},
		{"Pátios ativos", data.Stats.ActiveYards},
		{"Gerado em", data.GeneratedAt.Format(time.RFC3339)},
	}
	if err := writeRows(f, SummarySheet, summary, headerStyle); err != nil {
		return nil, err
	}

	warehouseNames := make(map[int64]string, len(data.Warehouses))
	warehouseRows := [][]interface{}{toRow(warehouseHeader)}
	for _, w := range data.Warehouses {
		warehouseNames[w.ID] = w.Name
		warehouseRows = append(warehouseRows, []interface{}{
			w.ID, w.Code, w.Name, w.Address, w.Area, w.Capacity, string(w.Status), w.Manager,
			deref(w.Notes), w.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := writeRows(f, WarehousesSheet, warehouseRows, headerStyle); err != nil {
		return nil, err
	}

	yardRows := [][]interface{}{toRow(yardHeader)}
	for _, y := range data.Yards {
		yardRows = append(yardRows, []interface{}{
			y.ID, y.Code, y.Name, WarehouseName(y.WarehouseID, warehouseNames), y.Area, y.Type,
			string(y.Status), deref(y.Notes), y.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	if err := writeRows(f, YardsSheet, yardRows, headerStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// WarehouseName resolve o nome do armazém de um pátio ou devolve MissingWarehouse.
func WarehouseName(id *int64, names map[int64]string) string {
	if id == nil {
		return MissingWarehouse
	}
	if name, ok := names[*id]; ok {
		return name
	}
	return MissingWarehouse
}

// writeRows grava as linhas a partir de A1; a primeira linha recebe o estilo de cabeçalho.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("falha ao converter coordenadas: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("falha ao gravar célula %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return fmt.Errorf("falha ao converter coordenadas: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("falha ao aplicar estilo do cabeçalho: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func toRow(header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
