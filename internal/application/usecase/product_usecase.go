package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/sistock-api/internal/application/dto"
	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	"github.com/jhoicas/sistock-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. El saldo se maneja solo vía movimientos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	upper      cases.Caser
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, upper: cases.Upper(language.Und)}
}

// Create crea un nuevo producto. El saldo inicia en 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := uc.upper.String(strings.TrimSpace(in.SKU))
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" || in.Price.IsNegative() || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.category(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          sku,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		MinimumStock: in.MinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica una edición parcial: nombre, categoría, descripción, precio y mínimo.
// SKU y saldo no se modifican aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Empty() || in.StockQuantity != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.MinimumStock != nil {
		product.MinimumStock = *in.MinimumStock
	}
	if product.Name == "" || product.Price.IsNegative() || product.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.category(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID, product.CategoryName = category.ID, category.Name
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros por nombre y categoría.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Name:       strings.TrimSpace(in.Name),
		CategoryID: strings.TrimSpace(in.CategoryID),
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina un producto por ID. Falla con ErrReferentialConflict si tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// category resuelve la categoría referenciada; ErrCategoryNotFound si no existe.
func (uc *ProductUseCase) category(ctx context.Context, id string) (*entity.Category, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinimumStock:  p.MinimumStock,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
