package warehouserepo_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
	"goyard/internal/repository/warehouserepo"
)

var columns = []string{"id", "code", "name", "address", "area", "capacity", "status", "manager", "notes", "created_at"}

var createdAt = time.Date(2024, 5, 12, 9, 41, 0, 0, time.UTC)

func newRepo(t *testing.T) (*warehouserepo.WarehouseRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return warehouserepo.NewWarehouseRepository(db, time.Second, logger.NewNopLogger()), mock
}

func kho01Row() *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(int64(1), "KHO-01", "Kho Trung Tâm", "123 Đường ABC", int64(5000), int64(10000), "active", "Nguyễn Văn A", "Kho chính", createdAt)
}

func TestCreateWarehouse_Success(t *testing.T) {
	repo, mock := newRepo(t)
	notes := "Kho chính"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO warehouses (code, name, address, area, capacity, status, manager, notes)")).
		WithArgs("KHO-01", "Kho Trung Tâm", "123 Đường ABC", int64(5000), int64(10000), "active", "Nguyễn Văn A", "Kho chính").
		WillReturnRows(kho01Row())

	w, err := repo.CreateWarehouse(context.Background(), domain.NewWarehouse{
		Code: "KHO-01", Name: "Kho Trung Tâm", Address: "123 Đường ABC",
		Area: 5000, Capacity: 10000, Status: domain.StatusActive, Manager: "Nguyễn Văn A", Notes: &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, createdAt, w.CreatedAt)
	require.NotNil(t, w.Notes)
	assert.Equal(t, "Kho chính", *w.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarehouse_DuplicateCode(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO warehouses")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "warehouses_code_key"})

	_, err := repo.CreateWarehouse(context.Background(), domain.NewWarehouse{Code: "KHO-01", Status: domain.StatusActive})

	var cv *apperror.ConstraintViolationError
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "code", cv.Field)
	assert.Contains(t, cv.Msg, "KHO-01")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarehouse_ValueOutOfRange(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO warehouses")).
		WillReturnError(&pq.Error{Code: "22003", Message: "value \"3000000000\" is out of range for type integer"})

	_, err := repo.CreateWarehouse(context.Background(), domain.NewWarehouse{Code: "KHO-01", Area: 3000000000, Status: domain.StatusActive})

	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	status, category, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", category)
	assert.NotContains(t, msg, "integer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWarehouse_DBFailure(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO warehouses")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateWarehouse(context.Background(), domain.NewWarehouse{Code: "KHO-09"})

	var internal *apperror.InternalError
	assert.ErrorAs(t, err, &internal)
}

func TestGetWarehouseByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM warehouses WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(kho01Row())

	w, err := repo.GetWarehouseByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "KHO-01", w.Code)
	assert.Equal(t, domain.StatusActive, w.Status)
	assert.Equal(t, 10000, w.Capacity)
}

func TestGetWarehouseByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM warehouses WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetWarehouseByID(context.Background(), 99)

	assert.True(t, apperror.IsNotFound(err))
}

func TestGetAllWarehouses_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM warehouses ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.GetAllWarehouses(context.Background(), domain.WarehouseFilter{})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetAllWarehouses_Search(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (name ILIKE $1 OR code ILIKE $1) ORDER BY id")).
		WithArgs("%kho-01%").
		WillReturnRows(kho01Row())

	list, err := repo.GetAllWarehouses(context.Background(), domain.WarehouseFilter{Search: " kho-01 "})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "KHO-01", list[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWarehouse_OnlySuppliedFields(t *testing.T) {
	repo, mock := newRepo(t)
	name := "Kho Mới"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE warehouses SET name = $1, notes = $2 WHERE id = $3 RETURNING")).
		WithArgs("Kho Mới", nil, int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "KHO-01", "Kho Mới", "123 Đường ABC", int64(5000), int64(10000), "active", "Nguyễn Văn A", nil, createdAt))

	w, err := repo.UpdateWarehouse(context.Background(), 1, domain.WarehousePatch{
		Name:  &name,
		Notes: domain.Null[string](),
	})

	require.NoError(t, err)
	assert.Equal(t, "Kho Mới", w.Name)
	assert.Equal(t, "KHO-01", w.Code)
	assert.Nil(t, w.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWarehouse_EmptyPatchReturnsCurrent(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM warehouses WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(kho01Row())

	w, err := repo.UpdateWarehouse(context.Background(), 1, domain.WarehousePatch{})

	require.NoError(t, err)
	assert.Equal(t, "Kho Trung Tâm", w.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWarehouse_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	area := 10

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE warehouses SET area = $1 WHERE id = $2")).
		WithArgs(int64(10), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateWarehouse(context.Background(), 42, domain.WarehousePatch{Area: &area})

	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateWarehouse_DuplicateCode(t *testing.T) {
	repo, mock := newRepo(t)
	code := "KHO-02"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE warehouses SET code = $1 WHERE id = $2")).
		WithArgs("KHO-02", int64(1)).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.UpdateWarehouse(context.Background(), 1, domain.WarehousePatch{Code: &code})

	assert.Equal(t, "code", apperror.FieldOf(err))
	var cv *apperror.ConstraintViolationError
	assert.ErrorAs(t, err, &cv)
}

func TestDeleteWarehouse_Idempotent(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM warehouses WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM warehouses WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteWarehouse(context.Background(), 1))
	assert.NoError(t, repo.DeleteWarehouse(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
