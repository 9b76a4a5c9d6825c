package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// FoodUseCase casos de uso CRUD para alimentos. La bandera is_expiring_soon
// se deriva contra el reloj en cada lectura, nunca se persiste.
type FoodUseCase struct {
	repo repository.FoodRepository
}

// NewFoodUseCase construye el caso de uso.
func NewFoodUseCase(repo repository.FoodRepository) *FoodUseCase {
	return &FoodUseCase{repo: repo}
}

// List devuelve todos los alimentos ordenados por fecha de vencimiento.
func (uc *FoodUseCase) List(ctx context.Context) ([]dto.FoodResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.FoodResponse, 0, len(list))
	for _, f := range list {
		items = append(items, toFoodResponse(f, now))
	}
	return items, nil
}

// Create registra un alimento nuevo. Quantity ausente toma 1 por defecto;
// la cota inferior no se valida a propósito (0 puede representar "agotado").
func (uc *FoodUseCase) Create(ctx context.Context, in dto.CreateFoodRequest) (*dto.FoodResponse, error) {
	expiry, err := time.Parse(dto.DateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	now := time.Now()
	item := &entity.FoodItem{
		Name:       in.Name,
		Quantity:   quantity,
		ExpiryDate: expiry,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	out := toFoodResponse(*item, now)
	return &out, nil
}

// Update aplica una actualización parcial: solo los campos presentes en el
// cuerpo cambian; los ausentes quedan intactos. Devuelve (nil, nil) si el id no existe.
func (uc *FoodUseCase) Update(ctx context.Context, id int64, in dto.UpdateFoodRequest) (*dto.FoodResponse, error) {
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
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.ExpiryDate != nil {
		expiry, err := time.Parse(dto.DateLayout, *in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		item.ExpiryDate = expiry
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := toFoodResponse(*item, item.UpdatedAt)
	return &out, nil
}

// Delete elimina un alimento. Devuelve domain.ErrNotFound si el id no existe;
// borrar dos veces el mismo id falla la segunda vez.
func (uc *FoodUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toFoodResponse(f entity.FoodItem, now time.Time) dto.FoodResponse {
	return dto.FoodResponse{
		ID:             f.ID,
		Name:           f.Name,
		Quantity:       f.Quantity,
		ExpiryDate:     f.ExpiryDate.Format(dto.DateLayout),
		IsExpiringSoon: f.IsExpiringSoon(now),
	}
}
