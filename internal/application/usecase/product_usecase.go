package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmrios/agropos-api/internal/application/dto"
	"github.com/jmrios/agropos-api/internal/application/inventory"
	"github.com/jmrios/agropos-api/internal/domain"
	"github.com/jmrios/agropos-api/internal/domain/entity"
	"github.com/jmrios/agropos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock se maneja vía ledger.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Si InitialStock > 0, la entrada IN se registra en
// la misma transacción que el insert del producto.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code y name son obligatorios", domain.ErrInvalidInput)
	}
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, in.Category)
	}
	if !entity.ValidUnit(in.Unit) {
		return nil, fmt.Errorf("%w: unidad %q", domain.ErrInvalidInput, in.Unit)
	}
	if in.CostPrice < 0 || in.SalePrice < 0 || in.InitialStock < 0 {
		return nil, fmt.Errorf("%w: precios y stock inicial no pueden ser negativos", domain.ErrInvalidInput)
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con código %s", domain.ErrDuplicate, in.Code)
	}

	minStock := int64(entity.DefaultMinStock)
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, fmt.Errorf("%w: minStock no puede ser negativo", domain.ErrInvalidInput)
		}
		minStock = *in.MinStock
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Category:  in.Category,
		Unit:      in.Unit,
		CostPrice: in.CostPrice,
		SalePrice: in.SalePrice,
		Stock:     in.InitialStock,
		MinStock:  minStock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.InitialStock == 0 {
		if err := uc.repo.Create(product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeIn,
			Qty:       in.InitialStock,
			UnitCost:  in.CostPrice,
			Reference: "Stock inicial",
			CreatedBy: userID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto activo por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos de catálogo. Stock no se toca (ledger).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, fmt.Errorf("%w: code no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, *in.Category)
		}
		product.Category = *in.Category
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, fmt.Errorf("%w: unidad %q", domain.ErrInvalidInput, *in.Unit)
		}
		product.Unit = *in.Unit
	}
	if in.CostPrice != nil {
		if *in.CostPrice < 0 {
			return nil, fmt.Errorf("%w: costPrice no puede ser negativo", domain.ErrInvalidInput)
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if *in.SalePrice < 0 {
			return nil, fmt.Errorf("%w: salePrice no puede ser negativo", domain.ErrInvalidInput)
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, fmt.Errorf("%w: minStock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ya existe un producto con código %s", domain.ErrDuplicate, product.Code)
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos con filtros y paginación.
func (uc *ProductUseCase) List(f repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Delete marca el producto como inactivo (borrado lógico). Borrar dos veces
// devuelve not found.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.SoftDelete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		LowStock:  p.Stock <= p.MinStock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
