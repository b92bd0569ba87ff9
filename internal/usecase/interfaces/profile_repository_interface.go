package interfaces

import (
	"context"
	"petsit_booking/internal/domain/entities"
)

// IProfileRepository reads the externally owned profiles table.

type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
}
