package services_test

import (
	"fmt"
	"testing"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"
	"monacowatch/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockWatchRepo is a testify mock of repositories.WatchRepository.
type MockWatchRepo struct {
	mock.Mock
}

func (m *MockWatchRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWatchRepo) Find(filter map[string]interface{}, limit int) ([]models.Watch, error) {
	args := m.Called(filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Watch), args.Error(1)
}

func (m *MockWatchRepo) FindByName(name string) (*models.Watch, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Watch), args.Error(1)
}

func (m *MockWatchRepo) Insert(watch *models.Watch) error {
	args := m.Called(watch)
	return args.Error(0)
}

func (m *MockWatchRepo) DeleteByID(id primitive.ObjectID) error {
	args := m.Called(id)
	return args.Error(0)
}

func newCatalogService(repo repositories.WatchRepository) *services.CatalogService {
	seeder := services.NewSeedService(repo, repositories.NewMockBlogRepository())
	return services.NewCatalogService(repo, seeder)
}

func TestCatalogService_ListWatchesPassesFilterAndLimit(t *testing.T) {
	mockRepo := new(MockWatchRepo)
	service := newCatalogService(mockRepo)

	featured := true
	stored := []models.Watch{
		{ID: primitive.NewObjectID(), Name: "Monaco Heritage Chronograph", Brand: "Monaco Watch Co.", Featured: true},
	}

	mockRepo.On("Count").Return(int64(3), nil).Once()
	mockRepo.On("Find", map[string]interface{}{"featured": true}, 12).Return(stored, nil).Once()

	out, err := service.ListWatches(&featured, 12)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Monaco Heritage Chronograph", out[0].Name)
	assert.True(t, out[0].Featured)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListWatchesNoFilter(t *testing.T) {
	mockRepo := new(MockWatchRepo)
	service := newCatalogService(mockRepo)

	mockRepo.On("Count").Return(int64(3), nil).Once()
	mockRepo.On("Find", map[string]interface{}{}, 12).Return([]models.Watch{}, nil).Once()

	out, err := service.ListWatches(nil, 12)

	require.NoError(t, err)
	assert.Empty(t, out)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SeedsOnEmptyRead(t *testing.T) {
	watchRepo := repositories.NewMockWatchRepository()
	service := newCatalogService(watchRepo)

	out, err := service.ListWatches(nil, 12)

	require.NoError(t, err)
	assert.Len(t, out, len(models.DemoWatches), "a cold store must be auto-populated on first read")
}

func TestCatalogService_FilterCorrectness(t *testing.T) {
	watchRepo := repositories.NewMockWatchRepository()
	service := newCatalogService(watchRepo)

	featured := true
	out, err := service.ListWatches(&featured, 12)

	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, w := range out {
		assert.True(t, w.Featured)
	}
}

func TestCatalogService_StoreUnavailableDegradesToEmpty(t *testing.T) {
	service := newCatalogService(repositories.NewMongoWatchRepository(nil))

	out, err := service.ListWatches(nil, 12)

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCatalogService_UnexpectedErrorBubbles(t *testing.T) {
	mockRepo := new(MockWatchRepo)
	service := newCatalogService(mockRepo)

	mockRepo.On("Count").Return(int64(3), nil).Once()
	mockRepo.On("Find", map[string]interface{}{}, 12).Return(nil, fmt.Errorf("cursor timeout")).Once()

	out, err := service.ListWatches(nil, 12)

	assert.Error(t, err)
	assert.Nil(t, out)
	mockRepo.AssertExpectations(t)
}
