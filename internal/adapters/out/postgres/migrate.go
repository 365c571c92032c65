package postgres

import (
	"fmt"

	"laundry/internal/adapters/out/postgres/itemrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/outboxrepo"
	"laundry/internal/adapters/out/postgres/partnerrepo"
	"laundry/internal/adapters/out/postgres/stagerepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in creation order.
func Models() []any {
	return []any{
		&partnerrepo.PartnerDTO{},
		&partnerrepo.ServiceAreaDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&stagerepo.StageDTO{},
		&itemrepo.ProcessingDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema, including the partner load check
// constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
