package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// SupplyUseCase casos de uso CRUD para artículos del hogar.
type SupplyUseCase struct {
	repo repository.SupplyRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(repo repository.SupplyRepository) *SupplyUseCase {
	return &SupplyUseCase{repo: repo}
}

// List devuelve todos los artículos ordenados por nombre.
func (uc *SupplyUseCase) List(ctx context.Context) ([]dto.SupplyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSupplyResponse(s))
	}
	return items, nil
}

// Create registra un artículo nuevo. StockLevel vacío toma 普通 por defecto;
// el handler ya validó que el valor pertenezca al conjunto cerrado.
func (uc *SupplyUseCase) Create(ctx context.Context, in dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	level := entity.StockLevel(in.StockLevel)
	if in.StockLevel == "" {
		level = entity.StockNormal
	}
	now := time.Now()
	item := &entity.SupplyItem{
		Name:       in.Name,
		StockLevel: level,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := toSupplyResponse(*item)
	return &out, nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si el id no existe.
func (uc *SupplyUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplyRequest) (*dto.SupplyResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.StockLevel != nil {
		item.StockLevel = entity.StockLevel(*in.StockLevel)
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := toSupplyResponse(*item)
	return &out, nil
}

// Delete elimina un artículo. Devuelve domain.ErrNotFound si el id no existe.
func (uc *SupplyUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toSupplyResponse(s entity.SupplyItem) dto.SupplyResponse {
	return dto.SupplyResponse{
		ID:         s.ID,
		Name:       s.Name,
		StockLevel: string(s.StockLevel),
		IsLow:      s.IsLow(),
	}
}
