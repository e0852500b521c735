package catalog

import (
	"context"

	"github.com/galleypos/galleypos-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ProductRepository exposes persistence operations for the product catalog.
type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Replace(ctx context.Context, products []models.Product) error
}

// Repository is the GORM-backed catalog repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// List returns every product ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads one product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Save persists the full product row.
func (r *Repository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Replace swaps the whole catalog for the provided products.
func (r *Repository) Replace(ctx context.Context, products []models.Product) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(products, 50).Error
}
