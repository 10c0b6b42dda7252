package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
	"github.com/tablewise/pos-api/pkg/pagination"
)

// ProductService handles catalog product management
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput represents input for creating a product. Prices are
// cents.
type CreateProductInput struct {
	Name         string
	CategoryID   *uuid.UUID
	SellingPrice int64
	CostPrice    int64
	SKU          string
	ImageURL     string
}

func (in *CreateProductInput) validate() error {
	var fieldErrors []apperror.FieldError

	if in.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "name", Message: "product name is required",
		})
	}
	if in.SellingPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "selling_price", Message: "selling price cannot be negative",
		})
	}
	if in.CostPrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "cost_price", Message: "cost price cannot be negative",
		})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateProduct creates a new product in the restaurant's catalog
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		Name:         input.Name,
		CategoryID:   input.CategoryID,
		SellingPrice: input.SellingPrice,
		CostPrice:    input.CostPrice,
		SKU:          input.SKU,
		ImageURL:     input.ImageURL,
		IsActive:     true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductInput represents input for updating a product. Nil fields
// are left unchanged.
type UpdateProductInput struct {
	Name         *string
	CategoryID   *uuid.UUID
	SellingPrice *int64
	CostPrice    *int64
	SKU          *string
	ImageURL     *string
	IsActive     *bool
}

// UpdateProduct applies a partial update to a product. Price changes only
// affect future orders; stored order items keep their snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Product name cannot be empty")
		}
		product.Name = *input.Name
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice < 0 {
			return nil, apperror.NewBadRequestError("Selling price cannot be negative")
		}
		product.SellingPrice = *input.SellingPrice
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewBadRequestError("Cost price cannot be negative")
		}
		product.CostPrice = *input.CostPrice
	}
	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// DeleteProduct soft-deletes a product. Existing orders referencing it
// are unaffected since line items carry their own snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
