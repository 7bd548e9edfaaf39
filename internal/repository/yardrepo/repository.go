package yardrepo

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

const yardColumns = `id, code, name, warehouse_id, area, type, status, notes, created_at`

// YardRepository implementa as operações CRUD de pátios no PostgreSQL.
// warehouse_id não tem FK: a referência ao armazém pode ficar órfã.
type YardRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewYardRepository cria e retorna uma nova instância do Repositório de Pátios.
func NewYardRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *YardRepository {
	return &YardRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanYard(row rowScanner) (domain.Yard, error) {
	var y domain.Yard
	err := row.Scan(
		&y.ID, &y.Code, &y.Name, &y.WarehouseID, &y.Area,
		&y.Type, &y.Status, &y.Notes, &y.CreatedAt,
	)
	return y, err
}

func (r *YardRepository) translateWriteError(err error, code string, action string) error {
	if _, ok := database.IsUniqueViolation(err); ok {
		r.logger.Warn("Código de pátio duplicado.", map[string]interface{}{"code": code})
		return errors.NewConstraintViolationError("code",
			fmt.Sprintf("Já existe um pátio com o código '%s'.", code), err)
	}
	if database.IsDataException(err) {
		r.logger.Warn("Valor rejeitado pelo banco.", map[string]interface{}{"code": code, "error": err.Error()})
		return errors.NewValidationError("Um ou mais valores estão fora do formato ou da faixa aceitos.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s pátio no DB.", action), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s pátio", action), err)
}

// CreateYard insere um novo pátio.
func (r *YardRepository) CreateYard(ctx context.Context, input domain.NewYard) (domain.Yard, error) {
	r.logger.Debug("Iniciando CreateYard no repositório.", map[string]interface{}{"code": input.Code})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO yards (code, name, warehouse_id, area, type, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + yardColumns

	yard, err := scanYard(r.DB.QueryRowContext(ctxTimeout, query,
		input.Code, input.Name, input.WarehouseID, input.Area,
		input.Type, input.Status, input.Notes,
	))
	if err != nil {
		return domain.Yard{}, r.translateWriteError(err, input.Code, "inserir")
	}

	r.logger.Info("Pátio criado com sucesso.", map[string]interface{}{"id": yard.ID, "code": yard.Code})
	return yard, nil
}

// GetYardByID busca um pátio pelo ID.
func (r *YardRepository) GetYardByID(ctx context.Context, id int64) (domain.Yard, error) {
	r.logger.Debug("Iniciando GetYardByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + yardColumns + ` FROM yards WHERE id = $1`

	yard, err := scanYard(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Info("Pátio não encontrado.", map[string]interface{}{"id": id})
		return domain.Yard{}, errors.NewNotFoundError(fmt.Sprintf("Pátio com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar pátio no DB.", err)
		return domain.Yard{}, errors.NewDBError("Falha ao buscar pátio", err)
	}

	return yard, nil
}

// GetAllYards lista os pátios ordenados por id, com filtros opcionais de busca e armazém.
func (r *YardRepository) GetAllYards(ctx context.Context, filter domain.YardFilter) ([]domain.Yard, error) {
	r.logger.Debug("Iniciando GetAllYards no repositório.", map[string]interface{}{"search": filter.Search})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var (
		conditions []string
		args       []interface{}
	)
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, database.LikePattern(search))
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR code ILIKE $%d)", len(args), len(args)))
	}
	if filter.WarehouseID != nil {
		args = append(args, *filter.WarehouseID)
		conditions = append(conditions, fmt.Sprintf("warehouse_id = $%d", len(args)))
	}

	query := `SELECT ` + yardColumns + ` FROM yards`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllYards query.", err)
		return nil, errors.NewDBError("Falha ao buscar todos os pátios", err)
	}
	defer rows.Close()

	yards := []domain.Yard{}
	for rows.Next() {
		yard, err := scanYard(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear pátio na iteração de GetAllYards.", err)
			return nil, errors.NewDBError("Falha ao mapear pátios do DB", err)
		}
		yards = append(yards, yard)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de pátios.", err)
		return nil, errors.NewDBError("Erro após iteração de pátios", err)
	}

	r.logger.Info("GetAllYards concluído com sucesso.", map[string]interface{}{"total_yards": len(yards)})
	return yards, nil
}

// UpdateYard aplica apenas os campos presentes no patch.
// warehouseId null desvincula o pátio; um patch vazio devolve o registro atual.
func (r *YardRepository) UpdateYard(ctx context.Context, id int64, patch domain.YardPatch) (domain.Yard, error) {
	r.logger.Debug("Iniciando UpdateYard no repositório.", map[string]interface{}{"id": id})

	var set database.SetBuilder
	if patch.Code != nil {
		set.Add("code", *patch.Code)
	}
	if patch.Name != nil {
		set.Add("name", *patch.Name)
	}
	if patch.WarehouseID.Set {
		set.Add("warehouse_id", patch.WarehouseID.Ptr())
	}
	if patch.Area != nil {
		set.Add("area", *patch.Area)
	}
	if patch.Type != nil {
		set.Add("type", *patch.Type)
	}
	if patch.Status != nil {
		set.Add("status", *patch.Status)
	}
	if patch.Notes.Set {
		set.Add("notes", patch.Notes.Ptr())
	}

	if set.Len() == 0 {
		return r.GetYardByID(ctx, id)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	clause, args := set.Build(id)
	query := fmt.Sprintf(`UPDATE yards SET %s WHERE id = $%d RETURNING %s`, clause, len(args), yardColumns)

	yard, err := scanYard(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err == sql.ErrNoRows {
		r.logger.Info("Pátio não encontrado para atualização.", map[string]interface{}{"id": id})
		return domain.Yard{}, errors.NewNotFoundError(fmt.Sprintf("Pátio com ID %d não encontrado.", id))
	}
	if err != nil {
		code := ""
		if patch.Code != nil {
			code = *patch.Code
		}
		return domain.Yard{}, r.translateWriteError(err, code, "atualizar")
	}

	r.logger.Info("Pátio atualizado com sucesso.", map[string]interface{}{"id": yard.ID, "fields": set.Len()})
	return yard, nil
}

// DeleteYard remove um pátio. Remover um id inexistente não é erro.
func (r *YardRepository) DeleteYard(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando DeleteYard no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM yards WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar pátio do DB.", err)
		return errors.NewDBError("Falha ao deletar pátio", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteYard.", err)
		return errors.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	r.logger.Info("DeleteYard concluído.", map[string]interface{}{"id": id, "rows_affected": rowsAffected})
	return nil
}
