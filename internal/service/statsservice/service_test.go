package statsservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
	"goyard/internal/service/statsservice"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetSystemStats(ctx context.Context) (domain.SystemStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SystemStats), args.Error(1)
}

func TestGetSystemStats_Success(t *testing.T) {
	mockRepo := new(MockStatsRepository)
	svc := statsservice.NewService(mockRepo, logger.NewNopLogger())

	expected := domain.SystemStats{TotalWarehouses: 2, TotalYards: 2, ActiveWarehouses: 2, ActiveYards: 1}
	mockRepo.On("GetSystemStats", mock.Anything).Return(expected, nil)

	stats, err := svc.GetSystemStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, stats)
	assert.LessOrEqual(t, stats.ActiveWarehouses, stats.TotalWarehouses)
	assert.LessOrEqual(t, stats.ActiveYards, stats.TotalYards)
}

func TestGetSystemStats_Fail_PropagatesTypedError(t *testing.T) {
	mockRepo := new(MockStatsRepository)
	svc := statsservice.NewService(mockRepo, logger.NewNopLogger())

	repoErr := apperror.NewDBError("Falha ao calcular estatísticas", errors.New("timeout"))
	mockRepo.On("GetSystemStats", mock.Anything).Return(domain.SystemStats{}, repoErr)

	_, err := svc.GetSystemStats(context.Background())

	assert.Equal(t, repoErr, err)
}

func TestGetSystemStats_Fail_WrapsUntypedError(t *testing.T) {
	mockRepo := new(MockStatsRepository)
	svc := statsservice.NewService(mockRepo, logger.NewNopLogger())

	mockRepo.On("GetSystemStats", mock.Anything).Return(domain.SystemStats{}, errors.New("boom"))

	_, err := svc.GetSystemStats(context.Background())

	assert.IsType(t, &apperror.InternalError{}, err)
}
