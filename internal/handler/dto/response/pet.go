package response

import (
	"time"

	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FromPetView deliberately drops the owner columns: the portal only ever
// shows a user their own pets.
func FromPetView(v *queries.PetView) *PetResponse {
	return &PetResponse{
		ID:        v.ID,
		Name:      v.Name,
		Species:   v.Species,
		Breed:     v.Breed,
		CreatedAt: v.CreatedAt,
	}
}
