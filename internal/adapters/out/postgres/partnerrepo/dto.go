// Package partnerrepo provides data transfer objects and mapping functions for
// partner persistence. Partners own their service areas; the current load is
// guarded by a check constraint as the last line against overbooking.
package partnerrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
type PartnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName  string    `gorm:"type:varchar(255);not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	IsVerified    bool      `gorm:"not null;default:false"`
	DailyCapacity int       `gorm:"type:int;not null"`
	CurrentLoad   int       `gorm:"type:int;not null;default:0;check:chk_partners_current_load,current_load >= 0 AND current_load <= daily_capacity"`
	Zone          string    `gorm:"type:varchar(32);not null"`
	AverageRating float64   `gorm:"type:numeric(3,2);not null;default:0"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time        `gorm:"not null"`
	ServiceAreas  []ServiceAreaDTO `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "partner_dtos".
func (PartnerDTO) TableName() string {
	return "partners"
}

// ServiceAreaDTO is one pincode served by a partner.
type ServiceAreaDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_partner_service_area"`
	Pincode   string    `gorm:"type:varchar(6);not null;uniqueIndex:idx_partner_service_area;index"`
}

func (ServiceAreaDTO) TableName() string {
	return "partner_service_areas"
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	s := aggregate.Snapshot()
	partnerID := s.ID.Bytes()

	areas := make([]ServiceAreaDTO, 0, len(s.ServiceAreas))
	for _, area := range s.ServiceAreas {
		areas = append(areas, ServiceAreaDTO{
			ID:        area.ID().Bytes(),
			PartnerID: partnerID,
			Pincode:   area.Pincode().String(),
		})
	}

	return PartnerDTO{
		ID:            partnerID,
		BusinessName:  s.BusinessName,
		Status:        s.Status.String(),
		IsVerified:    s.IsVerified,
		DailyCapacity: s.DailyCapacity,
		CurrentLoad:   s.CurrentLoad,
		Zone:          s.Zone,
		AverageRating: s.AverageRating,
		VerifiedAt:    s.VerifiedAt,
		CreatedAt:     s.CreatedAt,
		ServiceAreas:  areas,
	}
}

func (dto PartnerDTO) mutableColumns() map[string]any {
	return map[string]any{
		"business_name":  dto.BusinessName,
		"status":         dto.Status,
		"is_verified":    dto.IsVerified,
		"daily_capacity": dto.DailyCapacity,
		"current_load":   dto.CurrentLoad,
		"zone":           dto.Zone,
		"average_rating": dto.AverageRating,
		"verified_at":    dto.VerifiedAt,
	}
}

// toDomain rebuilds the aggregate through partner.RestorePartner, which
// re-checks the capacity and rating invariants.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := partner.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	areas := make([]*partner.ServiceArea, 0, len(dto.ServiceAreas))
	for _, areaDTO := range dto.ServiceAreas {
		area, areaErr := serviceAreaToDomain(areaDTO)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	var verifiedAt *time.Time
	if dto.VerifiedAt != nil {
		utc := dto.VerifiedAt.UTC()
		verifiedAt = &utc
	}

	return partner.RestorePartner(partner.State{
		ID:            id,
		BusinessName:  dto.BusinessName,
		Status:        status,
		IsVerified:    dto.IsVerified,
		DailyCapacity: dto.DailyCapacity,
		CurrentLoad:   dto.CurrentLoad,
		Zone:          dto.Zone,
		ServiceAreas:  areas,
		AverageRating: dto.AverageRating,
		VerifiedAt:    verifiedAt,
		CreatedAt:     dto.CreatedAt.UTC(),
	})
}

func serviceAreaToDomain(dto ServiceAreaDTO) (*partner.ServiceArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}
	return partner.NewServiceArea(id, pincode)
}
