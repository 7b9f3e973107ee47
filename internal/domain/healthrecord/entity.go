package healthrecord

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecordType  = errors.New("invalid record type")
	ErrInvalidQuantity    = errors.New("used product quantity must be positive")
	ErrInvalidUnitPrice   = errors.New("used product unit price must be positive")
	ErrInvalidServiceFee  = errors.New("used service price must be positive")
	ErrEmptyServiceName   = errors.New("used service name cannot be empty")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

const MaxDescriptionLength = 200

type RecordType string

const (
	TypeVaccination RecordType = "vaccination"
	TypeVetVisit    RecordType = "vet_visit"
	TypeWeightCheck RecordType = "weight_check"
	TypeMedication  RecordType = "medication"
)

func (t RecordType) IsValid() bool {
	switch t {
	case TypeVaccination, TypeVetVisit, TypeWeightCheck, TypeMedication:
		return true
	default:
		return false
	}
}

// UsedProduct is a consumption snapshot, same shape as an order item:
// quantity and unit price are frozen at visit time and never re-read from
// the catalog.
type UsedProduct struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

type UsedService struct {
	Name  string
	Price float64
}

// HealthRecord is a visit record. Its used_products are consumed from stock
// atomically at creation; updates are metadata-only and deletion never
// restocks (consumption is permanent once the visit happened).
type HealthRecord struct {
	id           uuid.UUID
	petID        uuid.UUID
	recordType   RecordType
	date         time.Time
	description  string
	notes        *string
	nextDueDate  *time.Time
	weightKg     *float64
	usedProducts []UsedProduct
	usedServices []UsedService
	createdAt    time.Time
}

func NewHealthRecord(
	petID uuid.UUID,
	recordType RecordType,
	date time.Time,
	description string,
	notes *string,
	nextDueDate *time.Time,
	weightKg *float64,
	usedProducts []UsedProduct,
	usedServices []UsedService,
) (*HealthRecord, error) {
	if !recordType.IsValid() {
		return nil, ErrInvalidRecordType
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	for _, up := range usedProducts {
		if up.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if up.UnitPrice <= 0 {
			return nil, ErrInvalidUnitPrice
		}
	}
	for _, us := range usedServices {
		if us.Name == "" {
			return nil, ErrEmptyServiceName
		}
		if us.Price <= 0 {
			return nil, ErrInvalidServiceFee
		}
	}

	return &HealthRecord{
		id:           uuid.New(),
		petID:        petID,
		recordType:   recordType,
		date:         date,
		description:  description,
		notes:        notes,
		nextDueDate:  nextDueDate,
		weightKg:     weightKg,
		usedProducts: usedProducts,
		usedServices: usedServices,
	}, nil
}

func ReconstructHealthRecord(
	id, petID uuid.UUID,
	recordType RecordType,
	date time.Time,
	description string,
	notes *string,
	nextDueDate *time.Time,
	weightKg *float64,
	usedProducts []UsedProduct,
	usedServices []UsedService,
	createdAt time.Time,
) *HealthRecord {
	return &HealthRecord{
		id:           id,
		petID:        petID,
		recordType:   recordType,
		date:         date,
		description:  description,
		notes:        notes,
		nextDueDate:  nextDueDate,
		weightKg:     weightKg,
		usedProducts: usedProducts,
		usedServices: usedServices,
		createdAt:    createdAt,
	}
}

func (r *HealthRecord) ID() uuid.UUID               { return r.id }
func (r *HealthRecord) PetID() uuid.UUID            { return r.petID }
func (r *HealthRecord) RecordType() RecordType      { return r.recordType }
func (r *HealthRecord) Date() time.Time             { return r.date }
func (r *HealthRecord) Description() string         { return r.description }
func (r *HealthRecord) Notes() *string              { return r.notes }
func (r *HealthRecord) NextDueDate() *time.Time     { return r.nextDueDate }
func (r *HealthRecord) WeightKg() *float64          { return r.weightKg }
func (r *HealthRecord) UsedProducts() []UsedProduct { return r.usedProducts }
func (r *HealthRecord) UsedServices() []UsedService { return r.usedServices }
func (r *HealthRecord) CreatedAt() time.Time        { return r.createdAt }

// ApplyMetadata is the admin update path: visit metadata only, never the
// consumption snapshots and never the stock they already consumed.
func (r *HealthRecord) ApplyMetadata(description *string, notes *string, nextDueDate *time.Time, weightKg *float64) error {
	if description != nil {
		if len(*description) > MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
		r.description = *description
	}
	if notes != nil {
		r.notes = notes
	}
	if nextDueDate != nil {
		r.nextDueDate = nextDueDate
	}
	if weightKg != nil {
		r.weightKg = weightKg
	}
	return nil
}
