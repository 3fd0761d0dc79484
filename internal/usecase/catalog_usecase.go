package usecase

import (
	"fmt"

	"mld-backend/internal/entity"
	"mld-backend/internal/repo/persistent"
	"mld-backend/pkg/logger"
)

// CatalogConfig parameterizes the one catalog component over the three
// product collections.
type CatalogConfig struct {
	Kind        entity.CatalogKind
	Label       string
	TypeDetails []string
	// UploadDir is the upload namespace; empty means the kind carries no image.
	UploadDir string
	// SoftDelete marks items inactive instead of removing them.
	SoftDelete bool
	// ListActiveOnly hides inactive items from the public listing.
	ListActiveOnly bool
}

var (
	CCTVCatalog = CatalogConfig{
		Kind:        entity.KindCCTV,
		Label:       "product",
		TypeDetails: []string{"camera", "dvr", "nvr", "accessories"},
		UploadDir:   "cctv",
	}

	NanoBeamCatalog = CatalogConfig{
		Kind:        entity.KindNanoBeam,
		Label:       "product",
		TypeDetails: []string{"nanobeam", "nanostation", "powerbeam", "airmax"},
		UploadDir:   "nanobeam",
	}

	InternetCatalog = CatalogConfig{
		Kind:           entity.KindInternet,
		Label:          "package",
		TypeDetails:    []string{"wifi", "adsl", "vdsl"},
		SoftDelete:     true,
		ListActiveOnly: true,
	}
)

func (c CatalogConfig) validTypeDetail(value string) bool {
	for _, v := range c.TypeDetails {
		if v == value {
			return true
		}
	}
	return false
}

type CatalogInput struct {
	Title          string
	Description    string
	Price          float64
	TypeDetail     string
	Features       []string
	Specifications map[string]string
	Image          string
	IsActive       *bool
}

// CatalogUpdate carries partial replacements; nil fields are left untouched.
type CatalogUpdate struct {
	Title          *string
	Description    *string
	Price          *float64
	TypeDetail     *string
	Features       *[]string
	Specifications *map[string]string
	Image          *string
	IsActive       *bool
}

type CatalogUseCase interface {
	Config() CatalogConfig
	List() ([]*entity.CatalogItem, error)
	Get(id string) (*entity.CatalogItem, error)
	Create(input CatalogInput) (*entity.CatalogItem, error)
	Update(id string, input CatalogUpdate) (*entity.CatalogItem, error)
	Delete(id string) error
}

type catalogUseCase struct {
	catalogRepo persistent.CatalogRepository
	cfg         CatalogConfig
	logger      *logger.Logger
}

func NewCatalogUseCase(catalogRepo persistent.CatalogRepository, cfg CatalogConfig, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (uc *catalogUseCase) Config() CatalogConfig {
	return uc.cfg
}

func (uc *catalogUseCase) List() ([]*entity.CatalogItem, error) {
	return uc.catalogRepo.List(uc.cfg.Kind, uc.cfg.ListActiveOnly)
}

func (uc *catalogUseCase) Get(id string) (*entity.CatalogItem, error) {
	item, err := uc.catalogRepo.GetByID(uc.cfg.Kind, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s %w", uc.cfg.Label, ErrNotFound)
		}
		uc.logger.Error("Failed to load %s %s: %v", uc.cfg.Kind, id, err)
		return nil, fmt.Errorf("failed to load %s", uc.cfg.Label)
	}
	return item, nil
}

func (uc *catalogUseCase) Create(input CatalogInput) (*entity.CatalogItem, error) {
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price is required", ErrValidation)
	}
	if !uc.cfg.validTypeDetail(input.TypeDetail) {
		return nil, fmt.Errorf("%w: type_detail must be one of %v", ErrValidation, uc.cfg.TypeDetails)
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := &entity.CatalogItem{
		Kind:           uc.cfg.Kind,
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		Image:          input.Image,
		TypeDetail:     input.TypeDetail,
		Features:       input.Features,
		Specifications: input.Specifications,
		IsActive:       active,
	}

	if err := uc.catalogRepo.Create(item); err != nil {
		uc.logger.Error("Failed to create %s %s: %v", uc.cfg.Kind, input.Title, err)
		return nil, fmt.Errorf("failed to create %s", uc.cfg.Label)
	}

	return item, nil
}

// Update applies a partial replacement. Provided fields are re-validated;
// untouched fields are not re-checked.
func (uc *catalogUseCase) Update(id string, input CatalogUpdate) (*entity.CatalogItem, error) {
	item, err := uc.catalogRepo.GetByID(uc.cfg.Kind, id)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s %w", uc.cfg.Label, ErrNotFound)
		}
		uc.logger.Error("Failed to load %s %s: %v", uc.cfg.Kind, id, err)
		return nil, fmt.Errorf("failed to update %s", uc.cfg.Label)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		item.Title = *input.Title
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrValidation)
		}
		item.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		item.Price = *input.Price
	}
	if input.TypeDetail != nil {
		if !uc.cfg.validTypeDetail(*input.TypeDetail) {
			return nil, fmt.Errorf("%w: type_detail must be one of %v", ErrValidation, uc.cfg.TypeDetails)
		}
		item.TypeDetail = *input.TypeDetail
	}
	if input.Features != nil {
		item.Features = *input.Features
	}
	if input.Specifications != nil {
		item.Specifications = *input.Specifications
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := uc.catalogRepo.Save(item); err != nil {
		uc.logger.Error("Failed to update %s %s: %v", uc.cfg.Kind, id, err)
		return nil, fmt.Errorf("failed to update %s", uc.cfg.Label)
	}

	return item, nil
}

// Delete is soft or hard per collection: internet packages flip isActive and
// stay fetchable by id, the hardware catalogs remove the row.
func (uc *catalogUseCase) Delete(id string) error {
	if uc.cfg.SoftDelete {
		item, err := uc.catalogRepo.GetByID(uc.cfg.Kind, id)
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%s %w", uc.cfg.Label, ErrNotFound)
			}
			uc.logger.Error("Failed to load %s %s: %v", uc.cfg.Kind, id, err)
			return fmt.Errorf("failed to delete %s", uc.cfg.Label)
		}
		item.IsActive = false
		if err := uc.catalogRepo.Save(item); err != nil {
			uc.logger.Error("Failed to deactivate %s %s: %v", uc.cfg.Kind, id, err)
			return fmt.Errorf("failed to delete %s", uc.cfg.Label)
		}
		return nil
	}

	if err := uc.catalogRepo.Delete(uc.cfg.Kind, id); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s %w", uc.cfg.Label, ErrNotFound)
		}
		uc.logger.Error("Failed to delete %s %s: %v", uc.cfg.Kind, id, err)
		return fmt.Errorf("failed to delete %s", uc.cfg.Label)
	}
	return nil
}
