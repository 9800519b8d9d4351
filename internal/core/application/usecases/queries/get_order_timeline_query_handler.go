package queries

import (
	"context"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler reads timeline entries and production updates of an
// order straight from the database, merged and sorted by creation time.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown order and an empty slice for
// an order without history.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orderID := query.OrderID().Bytes()

	var exists bool
	if err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, orderID).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, 'entry' AS source, kind, message, actor_id, created_at
		FROM timeline_entries
		WHERE order_id = ?
		UNION ALL
		SELECT id, 'production_update' AS source, '' AS kind, message, actor_id, created_at
		FROM production_updates
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderTimelineQueryResponse, 0)
	for rows.Next() {
		var item GetOrderTimelineQueryResponse
		var id uuid.UUID
		var source string

		if err = rows.Scan(
			&id,
			&source,
			&item.Kind,
			&item.Message,
			&item.ActorID,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Source = TimelineSource(source)
		item.CreatedAt = item.CreatedAt.UTC()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
