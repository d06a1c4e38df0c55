package services_test

import (
	"testing"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"
	"monacowatch/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBlogRepo is a testify mock of repositories.BlogRepository.
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepo) Find(filter map[string]interface{}, limit int) ([]models.BlogPost, error) {
	args := m.Called(filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) FindBySlugAndLocale(slug, locale string) (*models.BlogPost, error) {
	args := m.Called(slug, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) Insert(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepo) DeleteByID(id primitive.ObjectID) error {
	args := m.Called(id)
	return args.Error(0)
}

func newBlogService(repo repositories.BlogRepository) *services.BlogService {
	seeder := services.NewSeedService(repositories.NewMockWatchRepository(), repo)
	return services.NewBlogService(repo, seeder)
}

func TestBlogService_ListPostsFiltersByLocale(t *testing.T) {
	blogRepo := repositories.NewMockBlogRepository()
	service := newBlogService(blogRepo)

	out, err := service.ListPosts("de", 10)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "uhrmacherkunst-in-monaco", out[0].Slug)
	assert.Equal(t, "de", out[0].Locale)
}

func TestBlogService_ListPostsSeedsOnEmptyRead(t *testing.T) {
	blogRepo := repositories.NewMockBlogRepository()
	service := newBlogService(blogRepo)

	out, err := service.ListPosts("en", 10)

	require.NoError(t, err)
	assert.Len(t, out, 2)

	n, err := blogRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(len(models.DemoBlogPosts)), n)
}

func TestBlogService_GetPostBySlugHardMiss(t *testing.T) {
	mockRepo := new(MockBlogRepo)
	service := newBlogService(mockRepo)

	mockRepo.On("FindBySlugAndLocale", "does-not-exist", "en").Return(nil, repositories.ErrNotFound).Once()

	post, err := service.GetPostBySlug("does-not-exist", "en")

	assert.Nil(t, post)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_GetPostBySlugReturnsMatch(t *testing.T) {
	blogRepo := repositories.NewMockBlogRepository()
	service := newBlogService(blogRepo)

	// Prime the store through the read path's seed-on-empty.
	_, err := service.ListPosts("en", 1)
	require.NoError(t, err)

	post, err := service.GetPostBySlug("uhrmacherkunst-in-monaco", "de")

	require.NoError(t, err)
	assert.Equal(t, "Uhrmacherkunst in Monaco", post.Title)
	assert.Equal(t, "de", post.Locale)
}

func TestBlogService_StoreUnavailable(t *testing.T) {
	service := newBlogService(repositories.NewMongoBlogRepository(nil))

	out, err := service.ListPosts("en", 10)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	// The single-item fetch does not degrade; absence of a store is an error.
	_, err = service.GetPostBySlug("uhrmacherkunst-in-monaco", "de")
	assert.ErrorIs(t, err, repositories.ErrStoreUnavailable)
}
