package partnerrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner with its service areas.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner and brings the stored service areas in line
// with the aggregate.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	if err := r.syncServiceAreas(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a partner under a row lock.
func (r *GormPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindEligible returns active, verified partners serving pincode that still
// have spare capacity. The least loaded partner comes first; ties go to the
// better rated one and then to the lower id.
//
// Example:
//
//	candidates, err := repo.FindEligible(ctx, pincode)
//	if err != nil {
//		return err
//	}
//	if len(candidates) == 0 {
//		return services.ErrPartnerNotFound
//	}
func (r *GormPartnerRepository) FindEligible(ctx context.Context, pincode kernel.Pincode) ([]*partner.Partner, error) {
	if err := pincode.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Preload("ServiceAreas").
		Table("partners").
		Select("partners.*").
		Joins("JOIN partner_service_areas ON partner_service_areas.partner_id = partners.id").
		Where("partner_service_areas.pincode = ?", pincode.String()).
		Where("partners.status = ? AND partners.is_verified = ?", partner.Active.String(), true).
		Where("partners.current_load < partners.daily_capacity").
		Order("partners.current_load ASC, partners.average_rating DESC, partners.id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *GormPartnerRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("partner_id = ?", dto.ID).
		Order("pincode").
		Find(&dto.ServiceAreas).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPartnerRepository) syncServiceAreas(ctx context.Context, dto PartnerDTO) error {
	db := r.db.WithContext(ctx)

	keep := make([]uuid.UUID, 0, len(dto.ServiceAreas))
	for _, area := range dto.ServiceAreas {
		keep = append(keep, area.ID)
	}

	remove := db.Where("partner_id = ?", dto.ID)
	if len(keep) > 0 {
		remove = remove.Where("id NOT IN ?", keep)
	}
	if err := remove.Delete(&ServiceAreaDTO{}).Error; err != nil {
		return err
	}

	if len(dto.ServiceAreas) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.ServiceAreas).Error
}
