package warehouserepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"goyard/internal/domain"
	"goyard/internal/errors"
	"goyard/internal/pkg/database"
	"goyard/internal/pkg/logger"
)

const warehouseColumns = `id, code, name, address, area, capacity, status, manager, notes, created_at`

// WarehouseRepository implementa as operações CRUD de armazéns no PostgreSQL.
type WarehouseRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewWarehouseRepository cria e retorna uma nova instância do Repositório de Armazéns.
func NewWarehouseRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWarehouse(row rowScanner) (domain.Warehouse, error) {
	var w domain.Warehouse
	err := row.Scan(
		&w.ID, &w.Code, &w.Name, &w.Address, &w.Area, &w.Capacity,
		&w.Status, &w.Manager, &w.Notes, &w.CreatedAt,
	)
	return w, err
}

// translateWriteError converte falhas de escrita: UNIQUE violado e valor rejeitado
// pelo banco (classe 22) viram erro de cliente.
func (r *WarehouseRepository) translateWriteError(err error, code string, action string) error {
	if _, ok := database.IsUniqueViolation(err); ok {
		r.logger.Warn("Código de armazém duplicado.", map[string]interface{}{"code": code})
		return errors.NewConstraintViolationError("code",
			fmt.Sprintf("Já existe um armazém com o código '%s'.", code), err)
	}
	if database.IsDataException(err) {
		r.logger.Warn("Valor rejeitado pelo banco.", map[string]interface{}{"code": code, "error": err.Error()})
		return errors.NewValidationError("Um ou mais valores estão fora do formato ou da faixa aceitos.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s armazém no DB.", action), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s armazém", action), err)
}

// CreateWarehouse insere um novo armazém; id e created_at são atribuídos pelo banco.
func (r *WarehouseRepository) CreateWarehouse(ctx context.Context, input domain.NewWarehouse) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando CreateWarehouse no repositório.", map[string]interface{}{"code": input.Code})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO warehouses (code, name, address, area, capacity, status, manager, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + warehouseColumns

	warehouse, err := scanWarehouse(r.DB.QueryRowContext(ctxTimeout, query,
		input.Code, input.Name, input.Address, input.Area, input.Capacity,
		input.Status, input.Manager, input.Notes,
	))
	if err != nil {
		return domain.Warehouse{}, r.translateWriteError(err, input.Code, "inserir")
	}

	r.logger.Info("Armazém criado com sucesso.", map[string]interface{}{"id": warehouse.ID, "code": warehouse.Code})
	return warehouse, nil
}

// GetWarehouseByID busca um armazém pelo ID.
func (r *WarehouseRepository) GetWarehouseByID(ctx context.Context, id int64) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando GetWarehouseByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`

	warehouse, err := scanWarehouse(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Info("Armazém não encontrado.", map[string]interface{}{"id": id})
		return domain.Warehouse{}, errors.NewNotFoundError(fmt.Sprintf("Armazém com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar armazém no DB.", err)
		return domain.Warehouse{}, errors.NewDBError("Falha ao buscar armazém", err)
	}

	return warehouse, nil
}

// GetAllWarehouses lista os armazéns ordenados por id. Nunca devolve slice nil.
func (r *WarehouseRepository) GetAllWarehouses(ctx context.Context, filter domain.WarehouseFilter) ([]domain.Warehouse, error) {
	r.logger.Debug("Iniciando GetAllWarehouses no repositório.", map[string]interface{}{"search": filter.Search})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + warehouseColumns + ` FROM warehouses`
	var args []interface{}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query += ` WHERE (name ILIKE $1 OR code ILIKE $1)`
		args = append(args, database.LikePattern(search))
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllWarehouses query.", err)
		return nil, errors.NewDBError("Falha ao buscar todos os armazéns", err)
	}
	defer rows.Close()

	warehouses := []domain.Warehouse{}
	for rows.Next() {
		warehouse, err := scanWarehouse(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear armazém na iteração de GetAllWarehouses.", err)
			return nil, errors.NewDBError("Falha ao mapear armazéns do DB", err)
		}
		warehouses = append(warehouses, warehouse)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de armazéns.", err)
		return nil, errors.NewDBError("Erro após iteração de armazéns", err)
	}

	r.logger.Info("GetAllWarehouses concluído com sucesso.", map[string]interface{}{"total_warehouses": len(warehouses)})
	return warehouses, nil
}

// UpdateWarehouse aplica apenas os campos presentes no patch.
// Um patch vazio não executa UPDATE: devolve o registro atual (ou NotFound).
func (r *WarehouseRepository) UpdateWarehouse(ctx context.Context, id int64, patch domain.WarehousePatch) (domain.Warehouse, error) {
	r.logger.Debug("Iniciando UpdateWarehouse no repositório.", map[string]interface{}{"id": id})

	var set database.SetBuilder
	if patch.Code != nil {
		set.Add("code", *patch.Code)
	}
	if patch.Name != nil {
		set.Add("name", *patch.Name)
	}
	if patch.Address != nil {
		set.Add("address", *patch.Address)
	}
	if patch.Area != nil {
		set.Add("area", *patch.Area)
	}
	if patch.Capacity != nil {
		set.Add("capacity", *patch.Capacity)
	}
	if patch.Status != nil {
		set.Add("status", *patch.Status)
	}
	if patch.Manager != nil {
		set.Add("manager", *patch.Manager)
	}
	if patch.Notes.Set {
		set.Add("notes", patch.Notes.Ptr())
	}

	if set.Len() == 0 {
		return r.GetWarehouseByID(ctx, id)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	clause, args := set.Build(id)
	query := fmt.Sprintf(`UPDATE warehouses SET %s WHERE id = $%d RETURNING %s`, clause, len(args), warehouseColumns)

	warehouse, err := scanWarehouse(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err == sql.ErrNoRows {
		r.logger.Info("Armazém não encontrado para atualização.", map[string]interface{}{"id": id})
		return domain.Warehouse{}, errors.NewNotFoundError(fmt.Sprintf("Armazém com ID %d não encontrado.", id))
	}
	if err != nil {
		code := ""
		if patch.Code != nil {
			code = *patch.Code
		}
		return domain.Warehouse{}, r.translateWriteError(err, code, "atualizar")
	}

	r.logger.Info("Armazém atualizado com sucesso.", map[string]interface{}{"id": warehouse.ID, "fields": set.Len()})
	return warehouse, nil
}

// DeleteWarehouse remove um armazém. Remover um id inexistente não é erro.
// Pátios que referenciam o armazém não são alterados.
func (r *WarehouseRepository) DeleteWarehouse(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando DeleteWarehouse no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar armazém do DB.", err)
		return errors.NewDBError("Falha ao deletar armazém", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteWarehouse.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	r.logger.Info("DeleteWarehouse concluído.", map[string]interface{}{"id": id, "rows_affected": rowsAffected})
	return nil
}
