//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"petcare-backend/internal/domain/pet"
	"petcare-backend/internal/domain/schedule"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/clock"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	commandsmock "petcare-backend/tests/mock/commands"
	queriesmock "petcare-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const eventLeadTime = 6 * time.Hour

type EventCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockEvents  *commandsmock.MockEventRepository
	mockPets    *commandsmock.MockPetRepository
	mockQueries *queriesmock.MockEventQueries
	clock       *clock.MockClock
	commands    commands.EventCommands
}

func (s *EventCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEvents = commandsmock.NewMockEventRepository(s.mockCtrl)
	s.mockPets = commandsmock.NewMockPetRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewEventCommands(s.mockEvents, s.mockPets, s.mockQueries, s.clock, eventLeadTime)
}

func (s *EventCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventCommandsSuite(t *testing.T) {
	suite.Run(t, new(EventCommandsTestSuite))
}

func (s *EventCommandsTestSuite) ownedPet(petID uuid.UUID) *pet.Pet {
	return pet.ReconstructPet(petID, ownerEmail, "Owner", "Biscuit", "dog", nil, s.clock.Now())
}

func (s *EventCommandsTestSuite) reconstructEvent(petID uuid.UUID, at time.Time) *schedule.ScheduledEvent {
	return schedule.ReconstructScheduledEvent(
		uuid.New(), petID,
		"Vet checkup", at, schedule.TypeAppointment,
		nil, false, false, nil, nil,
		s.clock.Now(),
	)
}

func (s *EventCommandsTestSuite) TestCreateEvent() {
	ctx := context.Background()
	petID := uuid.New()
	req := reqdto.CreateEventRequest{
		PetID:         petID,
		Title:         "Vet checkup",
		EventDateTime: s.clock.Now().Add(48 * time.Hour),
		EventType:     "appointment",
	}

	s.Run("success: owner books an event on their pet", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		s.mockEvents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.EventView, error) {
				return &queries.EventView{ID: id, PetID: petID, Title: req.Title, EventType: req.EventType}, nil
			})

		view, err := s.commands.CreateEvent(ctx, ownerEmail, req)
		s.Require().NoError(err)
		s.Equal(petID, view.PetID)
		s.Equal("appointment", view.EventType)
	})

	s.Run("success: owner email comparison ignores case", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		s.mockEvents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			Return(&queries.EventView{PetID: petID}, nil)

		_, err := s.commands.CreateEvent(ctx, "OWNER@Example.COM", req)
		s.NoError(err)
	})

	s.Run("error: someone else's pet answers like a missing pet", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		// No Create call: ownership is settled before any write.

		_, err := s.commands.CreateEvent(ctx, "intruder@example.com", req)
		s.ErrorIs(err, commands.ErrEventNotFound)
	})

	s.Run("error: unknown pet id", func() {
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).
			Return(nil, infra.NewRepoErr("pet not found", infra.KindNotFound))

		_, err := s.commands.CreateEvent(ctx, ownerEmail, req)
		s.ErrorIs(err, commands.ErrEventNotFound)
	})

	s.Run("error: unrecognized event type is a validation failure", func() {
		badReq := req
		badReq.EventType = "party"
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)

		_, err := s.commands.CreateEvent(ctx, ownerEmail, badReq)
		s.ErrorIs(err, commands.ErrInvalidEventData)
	})
}

func (s *EventCommandsTestSuite) TestCancelEvent() {
	ctx := context.Background()
	petID := uuid.New()

	s.Run("success: event beyond the lead time is deleted", func() {
		entity := s.reconstructEvent(petID, s.clock.Now().Add(eventLeadTime+time.Minute))
		s.mockEvents.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		s.mockEvents.EXPECT().Delete(gomock.Any(), entity.ID()).Return(nil)

		s.NoError(s.commands.CancelEvent(ctx, ownerEmail, entity.ID()))
	})

	s.Run("success: exactly at the lead-time boundary still cancels", func() {
		entity := s.reconstructEvent(petID, s.clock.Now().Add(eventLeadTime))
		s.mockEvents.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		s.mockEvents.EXPECT().Delete(gomock.Any(), entity.ID()).Return(nil)

		s.NoError(s.commands.CancelEvent(ctx, ownerEmail, entity.ID()))
	})

	s.Run("error: one minute inside the window is too soon", func() {
		entity := s.reconstructEvent(petID, s.clock.Now().Add(eventLeadTime-time.Minute))
		s.mockEvents.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)
		// No Delete: the booking stays.

		err := s.commands.CancelEvent(ctx, ownerEmail, entity.ID())
		s.ErrorIs(err, commands.ErrEventTooSoon)
	})

	s.Run("error: past events cannot be cancelled", func() {
		entity := s.reconstructEvent(petID, s.clock.Now().Add(-time.Hour))
		s.mockEvents.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)

		err := s.commands.CancelEvent(ctx, ownerEmail, entity.ID())
		s.ErrorIs(err, commands.ErrEventInPast)
	})

	s.Run("error: non-owner learns nothing, not even the time rule", func() {
		entity := s.reconstructEvent(petID, s.clock.Now().Add(-time.Hour))
		s.mockEvents.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockPets.EXPECT().FindByID(gomock.Any(), petID).Return(s.ownedPet(petID), nil)

		err := s.commands.CancelEvent(ctx, "intruder@example.com", entity.ID())
		s.ErrorIs(err, commands.ErrEventNotFound)
	})

	s.Run("error: unknown event id", func() {
		eventID := uuid.New()
		s.mockEvents.EXPECT().FindByID(gomock.Any(), eventID).
			Return(nil, infra.NewRepoErr("event not found", infra.KindNotFound))

		err := s.commands.CancelEvent(ctx, ownerEmail, eventID)
		s.ErrorIs(err, commands.ErrEventNotFound)
	})
}
