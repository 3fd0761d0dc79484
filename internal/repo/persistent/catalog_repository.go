package persistent

import (
	"mld-backend/internal/entity"
	"mld-backend/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	List(kind entity.CatalogKind, activeOnly bool) ([]*entity.CatalogItem, error)
	GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error)
	Create(item *entity.CatalogItem) error
	Save(item *entity.CatalogItem) error
	Delete(kind entity.CatalogKind, id string) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) List(kind entity.CatalogKind, activeOnly bool) ([]*entity.CatalogItem, error) {
	query := r.db.Where("kind = ?", string(kind))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var productModels []model.ProductModel
	if err := query.Order("type_detail, title").Find(&productModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.CatalogItem, len(productModels))
	for i := range productModels {
		items[i] = ToCatalogEntity(&productModels[i])
	}
	return items, nil
}

func (r *catalogRepository) GetByID(kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	var productModel model.ProductModel
	err := r.db.Where("kind = ? AND id = ?", string(kind), id).First(&productModel).Error
	if err != nil {
		return nil, err
	}
	return ToCatalogEntity(&productModel), nil
}

func (r *catalogRepository) Create(item *entity.CatalogItem) error {
	productModel := ToCatalogModel(item)
	if err := r.db.Create(productModel).Error; err != nil {
		return err
	}
	*item = *ToCatalogEntity(productModel)
	return nil
}

// Save writes the full row back; callers read-modify-write so serialized
// columns (features, specifications) round-trip through the JSON serializer.
func (r *catalogRepository) Save(item *entity.CatalogItem) error {
	return r.db.Save(ToCatalogModel(item)).Error
}

func (r *catalogRepository) Delete(kind entity.CatalogKind, id string) error {
	result := r.db.Where("kind = ? AND id = ?", string(kind), id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
