package pet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("pet name cannot be empty")

// Pet is referenced from health records and scheduled events by an explicit
// owning id, dereferenced through the repository on demand. There is no
// "maybe already loaded" reference shape anywhere in the domain.
type Pet struct {
	id         uuid.UUID
	ownerEmail string
	ownerName  string
	name       string
	species    string
	breed      *string
	createdAt  time.Time
}

func NewPet(ownerEmail, ownerName, name, species string, breed *string) (*Pet, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Pet{
		id:         uuid.New(),
		ownerEmail: ownerEmail,
		ownerName:  ownerName,
		name:       name,
		species:    species,
		breed:      breed,
	}, nil
}

func ReconstructPet(id uuid.UUID, ownerEmail, ownerName, name, species string, breed *string, createdAt time.Time) *Pet {
	return &Pet{
		id:         id,
		ownerEmail: ownerEmail,
		ownerName:  ownerName,
		name:       name,
		species:    species,
		breed:      breed,
		createdAt:  createdAt,
	}
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) OwnerEmail() string   { return p.ownerEmail }
func (p *Pet) OwnerName() string    { return p.ownerName }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Species() string      { return p.species }
func (p *Pet) Breed() *string       { return p.breed }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
