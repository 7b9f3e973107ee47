package commands

import (
	"context"
	"log/slog"

	"petcare-backend/internal/domain/healthrecord"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound     = errs.New("pet not found")
	ErrRecordNotFound  = errs.New("health record not found")
	ErrServiceNotFound = errs.New("service not found")
)

type HealthRecordCommands interface {
	CreateHealthRecord(ctx context.Context, req reqdto.CreateHealthRecordRequest) (*queries.HealthRecordView, error)
	UpdateHealthRecord(ctx context.Context, recordID uuid.UUID, req reqdto.UpdateHealthRecordRequest) (*queries.HealthRecordView, error)
	DeleteHealthRecord(ctx context.Context, recordID uuid.UUID) error
}

type healthRecordCommandsImpl struct {
	records       HealthRecordRepository
	pets          PetRepository
	products      ProductReader
	services      ServiceReader
	engine        StockReserver
	recordQueries queries.HealthRecordQueries
	logger        *slog.Logger
}

func NewHealthRecordCommands(
	records HealthRecordRepository,
	pets PetRepository,
	products ProductReader,
	services ServiceReader,
	engine StockReserver,
	recordQueries queries.HealthRecordQueries,
	logger *slog.Logger,
) HealthRecordCommands {
	return &healthRecordCommandsImpl{
		records:       records,
		pets:          pets,
		products:      products,
		services:      services,
		engine:        engine,
		recordQueries: recordQueries,
		logger:        logger,
	}
}

// CreateHealthRecord consumes the used products from stock all-or-nothing
// before the record is persisted. The pet is resolved by its explicit id,
// never handed in pre-loaded.
func (u *healthRecordCommandsImpl) CreateHealthRecord(
	ctx context.Context,
	req reqdto.CreateHealthRecordRequest,
) (*queries.HealthRecordView, error) {
	if _, err := u.pets.FindByID(ctx, req.PetID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	usedProducts := make([]healthrecord.UsedProduct, 0, len(req.UsedProducts))
	demands := make([]stock.Demand, 0, len(req.UsedProducts))
	for _, up := range req.UsedProducts {
		snap, err := u.products.FindByID(ctx, up.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, stock.ErrProductNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		usedProducts = append(usedProducts, healthrecord.UsedProduct{
			ProductID: snap.ID,
			Quantity:  up.Quantity,
			UnitPrice: snap.Price,
		})
		demands = append(demands, stock.Demand{ProductID: snap.ID, Quantity: up.Quantity})
	}

	usedServices := make([]healthrecord.UsedService, 0, len(req.UsedServices))
	for _, us := range req.UsedServices {
		snap, err := u.services.FindByID(ctx, us.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		usedServices = append(usedServices, healthrecord.UsedService{
			Name:  snap.Name,
			Price: snap.Price,
		})
	}

	entity, err := healthrecord.NewHealthRecord(
		req.PetID,
		healthrecord.RecordType(req.RecordType),
		req.Date,
		req.Description,
		req.Notes,
		req.NextDueDate,
		req.WeightKg,
		usedProducts,
		usedServices,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.engine.Reserve(ctx, demands); err != nil {
		return nil, err
	}

	if err := u.records.Create(ctx, entity); err != nil {
		u.logger.Error("CRITICAL: health record persistence failed after stock reservation, stock left decremented",
			"record_id", entity.ID(),
			"pet_id", entity.PetID(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.recordQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// UpdateHealthRecord edits visit metadata only; the consumption snapshots and
// the stock they drew from are never re-adjusted.
func (u *healthRecordCommandsImpl) UpdateHealthRecord(
	ctx context.Context,
	recordID uuid.UUID,
	req reqdto.UpdateHealthRecordRequest,
) (*queries.HealthRecordView, error) {
	entity, err := u.findRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if err := entity.ApplyMetadata(req.Description, req.Notes, req.NextDueDate, req.WeightKg); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.records.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.recordQueries.GetByIDSystem(ctx, recordID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// DeleteHealthRecord hard-deletes the record without restocking: the
// consumption already happened at the visit and is permanent.
func (u *healthRecordCommandsImpl) DeleteHealthRecord(ctx context.Context, recordID uuid.UUID) error {
	if _, err := u.findRecord(ctx, recordID); err != nil {
		return err
	}

	if err := u.records.Delete(ctx, recordID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *healthRecordCommandsImpl) findRecord(ctx context.Context, recordID uuid.UUID) (*healthrecord.HealthRecord, error) {
	entity, err := u.records.FindByID(ctx, recordID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
