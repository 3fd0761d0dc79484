package usecase

import (
	"testing"

	"mld-backend/internal/entity"
	"mld-backend/internal/repo/persistent"
	"mld-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of persistent.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(kind entity.CatalogKind, activeOnly bool) ([]*entity.CatalogItem, error) {
	args := m.Called(kind, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepository) Create(item *entity.CatalogItem) error {
	args := m.Called(item)
	if args.Error(0) == nil && item.ID == "" {
		item.ID = "item-1"
	}
	return args.Error(0)
}

func (m *MockCatalogRepository) Save(item *entity.CatalogItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(kind entity.CatalogKind, id string) error {
	args := m.Called(kind, id)
	return args.Error(0)
}

var _ persistent.CatalogRepository = (*MockCatalogRepository)(nil)

func TestCatalogCreate_RejectsUnknownTypeDetail(t *testing.T) {
	repo := new(MockCatalogRepository)
	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())

	_, err := uc.Create(CatalogInput{
		Title:       "Dome Camera",
		Description: "Indoor dome camera",
		Price:       120,
		TypeDetail:  "doorbell",
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCatalogCreate_RejectsMissingPrice(t *testing.T) {
	repo := new(MockCatalogRepository)
	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())

	_, err := uc.Create(CatalogInput{
		Title:       "Dome Camera",
		Description: "Indoor dome camera",
		TypeDetail:  "camera",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogCreate_DefaultsToActive(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("Create", mock.MatchedBy(func(item *entity.CatalogItem) bool {
		return item.IsActive && item.Kind == entity.KindCCTV
	})).Return(nil)

	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())
	item, err := uc.Create(CatalogInput{
		Title:       "Dome Camera",
		Description: "Indoor dome camera",
		Price:       120,
		TypeDetail:  "camera",
	})

	assert.NoError(t, err)
	assert.True(t, item.IsActive)
	repo.AssertExpectations(t)
}

func TestCatalogUpdate_RevalidatesTypeDetail(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetByID", entity.KindInternet, "p1").Return(&entity.CatalogItem{
		ID:         "p1",
		Kind:       entity.KindInternet,
		TypeDetail: "wifi",
	}, nil)

	uc := NewCatalogUseCase(repo, InternetCatalog, logger.New())
	bad := "fiber"
	_, err := uc.Update("p1", CatalogUpdate{TypeDetail: &bad})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCatalogUpdate_PartialLeavesRestUntouched(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetByID", entity.KindNanoBeam, "p1").Return(&entity.CatalogItem{
		ID:          "p1",
		Kind:        entity.KindNanoBeam,
		Title:       "NanoBeam 5AC",
		Description: "5 GHz bridge",
		Price:       99,
		TypeDetail:  "nanobeam",
		IsActive:    true,
	}, nil)
	repo.On("Save", mock.AnythingOfType("*entity.CatalogItem")).Return(nil)

	uc := NewCatalogUseCase(repo, NanoBeamCatalog, logger.New())
	price := 89.0
	item, err := uc.Update("p1", CatalogUpdate{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, 89.0, item.Price)
	assert.Equal(t, "NanoBeam 5AC", item.Title)
	assert.Equal(t, "nanobeam", item.TypeDetail)
}

func TestCatalogDelete_SoftDeactivates(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetByID", entity.KindInternet, "p1").Return(&entity.CatalogItem{
		ID:       "p1",
		Kind:     entity.KindInternet,
		IsActive: true,
	}, nil)
	repo.On("Save", mock.MatchedBy(func(item *entity.CatalogItem) bool {
		return !item.IsActive
	})).Return(nil)

	uc := NewCatalogUseCase(repo, InternetCatalog, logger.New())
	err := uc.Delete("p1")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCatalogDelete_HardRemoves(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("Delete", entity.KindCCTV, "p1").Return(nil)

	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())
	err := uc.Delete("p1")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCatalogList_InternetHidesInactive(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("List", entity.KindInternet, true).Return([]*entity.CatalogItem{}, nil)

	uc := NewCatalogUseCase(repo, InternetCatalog, logger.New())
	_, err := uc.List()

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCatalogList_CCTVIncludesInactive(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("List", entity.KindCCTV, false).Return([]*entity.CatalogItem{}, nil)

	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())
	_, err := uc.List()

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCatalogGet_StoreFailure(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetByID", entity.KindInternet, "p1").Return(nil, errStoreDown)

	uc := NewCatalogUseCase(repo, InternetCatalog, logger.New())
	_, err := uc.Get("p1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCatalogDelete_StoreFailure(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("Delete", entity.KindCCTV, "p1").Return(errStoreDown)

	uc := NewCatalogUseCase(repo, CCTVCatalog, logger.New())
	err := uc.Delete("p1")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCatalogGet_NotFound(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("GetByID", entity.KindInternet, "ghost").Return(nil, errNotFound)

	uc := NewCatalogUseCase(repo, InternetCatalog, logger.New())
	_, err := uc.Get("ghost")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "package")
}
