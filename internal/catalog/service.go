package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db/models"
	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the catalog gateway the POS sessions sell against.
type Service interface {
	ListItems(ctx context.Context) ([]models.Product, error)
	GetItem(ctx context.Context, id int64) (*models.Product, error)
	// DecrementStock lowers the item's stock by quantity, floored at zero.
	DecrementStock(ctx context.Context, id int64, quantity int) error
	// Reseed replaces the catalog with a randomized mock inventory.
	Reseed(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo ProductRepository
	tx   txRunner
	cfg  config.CatalogConfig
}

// NewService builds a catalog service backed by the provided stack.
func NewService(repo ProductRepository, tx txRunner, cfg config.CatalogConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, cfg: cfg}, nil
}

// ListItems returns the full catalog.
func (s *service) ListItems(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return products, nil
}

// GetItem loads one catalog item.
func (s *service) GetItem(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	return product, nil
}

// DecrementStock lowers stock by the sold quantity, never below zero.
func (s *service) DecrementStock(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		product, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		product.Stock = max(product.Stock-quantity, 0)
		return txRepo.Save(ctx, product)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement stock")
	}
	return nil
}

// Reseed replaces the whole catalog with a random mock inventory.
func (s *service) Reseed(ctx context.Context) ([]models.Product, error) {
	products := randomProducts(s.cfg)
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Replace(ctx, products)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reseed catalog")
	}
	return products, nil
}
