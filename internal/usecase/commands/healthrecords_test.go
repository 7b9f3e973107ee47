//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"petcare-backend/internal/domain/healthrecord"
	"petcare-backend/internal/domain/pet"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"
	commandsmock "petcare-backend/tests/mock/commands"
	queriesmock "petcare-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HealthRecordCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRecords  *commandsmock.MockHealthRecordRepository
	mockPets     *commandsmock.MockPetRepository
	mockProducts *commandsmock.MockProductReader
	mockServices *commandsmock.MockServiceReader
	mockEngine   *commandsmock.MockStockReserver
	mockQueries  *queriesmock.MockHealthRecordQueries
	commands     commands.HealthRecordCommands
}

func (s *HealthRecordCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRecords = commandsmock.NewMockHealthRecordRepository(s.mockCtrl)
	s.mockPets = commandsmock.NewMockPetRepository(s.mockCtrl)
	s.mockProducts = commandsmock.NewMockProductReader(s.mockCtrl)
	s.mockServices = commandsmock.NewMockServiceReader(s.mockCtrl)
	s.mockEngine = commandsmock.NewMockStockReserver(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHealthRecordQueries(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewHealthRecordCommands(
		s.mockRecords, s.mockPets, s.mockProducts, s.mockServices,
		s.mockEngine, s.mockQueries, logger,
	)
}

func (s *HealthRecordCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHealthRecordCommandsSuite(t *testing.T) {
	suite.Run(t, new(HealthRecordCommandsTestSuite))
}

func anyPet(petID uuid.UUID) *pet.Pet {
	return pet.ReconstructPet(petID, ownerEmail, "Owner", "Biscuit", "dog", nil, time.Now())
}

func reconstructRecord(petID uuid.UUID) *healthrecord.HealthRecord {
	return healthrecord.ReconstructHealthRecord(
		uuid.New(), petID,
		healthrecord.TypeVetVisit,
		time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
		"Annual exam",
		nil, nil, nil,
		[]healthrecord.UsedProduct{{ProductID: uuid.New(), Quantity: 2, UnitPrice: 4.0}},
		nil,
		time.Now(),
	)
}

func (s *HealthRecordCommandsTestSuite) TestCreateHealthRecord() {
	ctx := context.Background()
	petID := uuid.New()
	productID := uuid.New()
	serviceID := uuid.New()
	visitDate := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	req := reqdto.CreateHealthRecordRequest{
		PetID:        petID,
		RecordType:   "vet_visit",
		Date:         visitDate,
		Description:  "Ear infection treatment",
		UsedProducts: []reqdto.UsedProductRequest{{ProductID: productID, Quantity: 2}},
		UsedServices: []reqdto.UsedServiceRequest{{ServiceID: serviceID}},
	}
	productSnap := &commands.ProductSnapshot{ID: productID, Name: "Ear Drops", Price: 9.5, StockQuantity: 6}
	serviceSnap := &commands.ServiceSnapshot{ID: serviceID, Name: "Consultation", Price: 40.0}

	s.Run("success: consumes stock and snapshots prices into the record", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(anyPet(petID), nil)
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).Return(productSnap, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).Return(serviceSnap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), []stock.Demand{{ProductID: productID, Quantity: 2}}).Return(nil)
		var persisted *healthrecord.HealthRecord
		s.mockRecords.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *healthrecord.HealthRecord) error {
				persisted = r
				return nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.HealthRecordView, error) {
				return &queries.HealthRecordView{ID: id, PetID: petID}, nil
			})

		view, err := s.commands.CreateHealthRecord(ctx, req)
		s.Require().NoError(err)
		s.Equal(petID, view.PetID)
		s.Require().NotNil(persisted)
		s.Require().Len(persisted.UsedProducts(), 1)
		s.Equal(9.5, persisted.UsedProducts()[0].UnitPrice)
		s.Require().Len(persisted.UsedServices(), 1)
		s.Equal("Consultation", persisted.UsedServices()[0].Name)
		s.Equal(40.0, persisted.UsedServices()[0].Price)
	})

	s.Run("error: unknown pet surfaces before any stock movement", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).
			Return(nil, infra.NewRepoErr("pet not found", infra.KindNotFound))
		// No product lookup, no Reserve.

		_, err := s.commands.CreateHealthRecord(ctx, req)
		s.ErrorIs(err, commands.ErrPetNotFound)
	})

	s.Run("error: unknown service rejects the record before reservation", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(anyPet(petID), nil)
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).Return(productSnap, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).
			Return(nil, infra.NewRepoErr("service not found", infra.KindNotFound))

		_, err := s.commands.CreateHealthRecord(ctx, req)
		s.ErrorIs(err, commands.ErrServiceNotFound)
	})

	s.Run("error: reservation failure leaves nothing persisted", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(anyPet(petID), nil)
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).Return(productSnap, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).Return(serviceSnap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(&stock.ReservationFailure{ProductID: productID})
		// No Create: the engine already compensated internally.

		_, err := s.commands.CreateHealthRecord(ctx, req)
		var failure *stock.ReservationFailure
		s.ErrorAs(err, &failure)
	})

	s.Run("error: persistence failure after reservation is not compensated", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(anyPet(petID), nil)
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).Return(productSnap, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).Return(serviceSnap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil)
		s.mockRecords.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))
		// No Release expectation: stock stays consumed for manual reconciliation.

		_, err := s.commands.CreateHealthRecord(ctx, req)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})

	s.Run("error: zero quantity is rejected by the domain", func() {
		badReq := req
		badReq.UsedProducts = []reqdto.UsedProductRequest{{ProductID: productID, Quantity: 0}}
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(anyPet(petID), nil)
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).Return(productSnap, nil)
		s.mockServices.EXPECT().FindByID(gomock.Any(), serviceID).Return(serviceSnap, nil)

		_, err := s.commands.CreateHealthRecord(ctx, badReq)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *HealthRecordCommandsTestSuite) TestUpdateHealthRecord() {
	ctx := context.Background()
	petID := uuid.New()

	s.Run("success: edits metadata without touching consumption or stock", func() {
		entity := reconstructRecord(petID)
		newNotes := "Recovered well"
		newWeight := 12.4
		s.mockRecords.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		var updated *healthrecord.HealthRecord
		s.mockRecords.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *healthrecord.HealthRecord) error {
				updated = r
				return nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), entity.ID()).
			Return(&queries.HealthRecordView{ID: entity.ID()}, nil)
		// No Reserve, no Release: consumption snapshots are immutable.

		_, err := s.commands.UpdateHealthRecord(ctx, entity.ID(), reqdto.UpdateHealthRecordRequest{
			Notes:    &newNotes,
			WeightKg: &newWeight,
		})
		s.Require().NoError(err)
		s.Require().NotNil(updated)
		s.Equal(&newNotes, updated.Notes())
		s.Require().Len(updated.UsedProducts(), 1)
		s.Equal(2, updated.UsedProducts()[0].Quantity)
	})

	s.Run("error: unknown record id", func() {
		recordID := uuid.New()
		s.mockRecords.EXPECT().FindByID(gomock.Any(), recordID).
			Return(nil, infra.NewRepoErr("record not found", infra.KindNotFound))

		_, err := s.commands.UpdateHealthRecord(ctx, recordID, reqdto.UpdateHealthRecordRequest{})
		s.ErrorIs(err, commands.ErrRecordNotFound)
	})
}

func (s *HealthRecordCommandsTestSuite) TestDeleteHealthRecord() {
	ctx := context.Background()
	petID := uuid.New()

	s.Run("success: deletes the record and never returns consumed stock", func() {
		entity := reconstructRecord(petID)
		s.mockRecords.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockRecords.EXPECT().Delete(gomock.Any(), entity.ID()).Return(nil)
		// No Release expectation: the consumption is permanent.

		s.NoError(s.commands.DeleteHealthRecord(ctx, entity.ID()))
	})

	s.Run("error: unknown record id", func() {
		recordID := uuid.New()
		s.mockRecords.EXPECT().FindByID(gomock.Any(), recordID).
			Return(nil, infra.NewRepoErr("record not found", infra.KindNotFound))

		err := s.commands.DeleteHealthRecord(ctx, recordID)
		s.ErrorIs(err, commands.ErrRecordNotFound)
	})
}
