package commands

import (
	"context"

	"petcare-backend/internal/domain/pet"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/pkg/errs"
	"petcare-backend/internal/usecase/queries"
)

type PetCommands interface {
	CreatePet(ctx context.Context, ownerEmail, ownerName string, req reqdto.CreatePetRequest) (*queries.PetView, error)
}

type petCommandsImpl struct {
	pets       PetRepository
	petQueries queries.PetQueries
}

func NewPetCommands(pets PetRepository, petQueries queries.PetQueries) PetCommands {
	return &petCommandsImpl{
		pets:       pets,
		petQueries: petQueries,
	}
}

func (u *petCommandsImpl) CreatePet(ctx context.Context, ownerEmail, ownerName string, req reqdto.CreatePetRequest) (*queries.PetView, error) {
	entity, err := pet.NewPet(ownerEmail, ownerName, req.Name, req.Species, req.Breed)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.pets.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.petQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
