package queries

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type stageRow struct {
	ID               uuid.UUID
	Stage            string
	StageCategory    string
	PerformedBy      uuid.UUID
	Notes            string
	Photos           datatypes.JSON
	HasIssue         bool
	IssueDescription string
	StartedAt        time.Time
	CompletedAt      *time.Time
}

// GetOrderStagesQueryHandler reads the stage timeline ordered by start time
// then insertion, and resolves every photo key through the PhotoURLResolver.
type GetOrderStagesQueryHandler struct {
	db       *gorm.DB
	resolver ports.PhotoURLResolver
}

func NewGetOrderStagesQueryHandler(db *gorm.DB, resolver ports.PhotoURLResolver) GetOrderStagesQueryHandler {
	return GetOrderStagesQueryHandler{db: db, resolver: resolver}
}

func (h GetOrderStagesQueryHandler) Handle(ctx context.Context, query GetOrderStagesQuery) ([]StageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, orderID.Bytes()).Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	var rows []stageRow
	err := db.Raw(`
		SELECT
			id, stage, stage_category, performed_by, notes, photos,
			has_issue, issue_description, started_at, completed_at
		FROM processing_stages
		WHERE order_id = ?
		ORDER BY started_at, seq
	`, orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	timeline := make([]StageView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := h.stageView(ctx, row)
		if viewErr != nil {
			return nil, viewErr
		}
		timeline = append(timeline, view)
	}
	return timeline, nil
}

func (h GetOrderStagesQueryHandler) stageView(ctx context.Context, row stageRow) (StageView, error) {
	id, err := kernelID(row.ID)
	if err != nil {
		return StageView{}, err
	}
	performedBy, err := kernelID(row.PerformedBy)
	if err != nil {
		return StageView{}, err
	}
	keys, err := decodeKeys(row.Photos)
	if err != nil {
		return StageView{}, err
	}

	photos := make([]PhotoView, 0, len(keys))
	for _, key := range keys {
		url, resolveErr := h.resolver.ResolveURL(ctx, key)
		if resolveErr != nil {
			return StageView{}, fmt.Errorf("resolve photo %q: %w", key, resolveErr)
		}
		photos = append(photos, PhotoView{Key: key, URL: url})
	}

	view := StageView{
		ID:               id,
		Stage:            row.Stage,
		Category:         row.StageCategory,
		PerformedBy:      performedBy,
		Notes:            row.Notes,
		Photos:           photos,
		HasIssue:         row.HasIssue,
		IssueDescription: row.IssueDescription,
		StartedAt:        row.StartedAt.UTC(),
		CompletedAt:      utcPtr(row.CompletedAt),
	}
	if view.CompletedAt != nil {
		d := view.CompletedAt.Sub(view.StartedAt)
		view.Duration = &d
	}
	return view, nil
}
