package queries

import (
	"context"
	"errors"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/guard"
)

var ErrGetLeadTimeDefaultsQueryIsNotConstructed = errors.New(
	"GetLeadTimeDefaultsQuery must be created via NewGetLeadTimeDefaultsQuery constructor",
)

// GetLeadTimeDefaultsQuery reads the global lead-time profile.
type GetLeadTimeDefaultsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLeadTimeDefaultsQuery() GetLeadTimeDefaultsQuery {
	return GetLeadTimeDefaultsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLeadTimeDefaultsQuery) Validate() error {
	return q.guard.Validate(ErrGetLeadTimeDefaultsQueryIsNotConstructed)
}

// GetLeadTimeDefaultsQueryHandler answers with the stored global profile, or the
// hardcoded defaults when none is stored.
type GetLeadTimeDefaultsQueryHandler struct {
	resolver ProfileResolver
}

func NewGetLeadTimeDefaultsQueryHandler(resolver ProfileResolver) GetLeadTimeDefaultsQueryHandler {
	return GetLeadTimeDefaultsQueryHandler{resolver: resolver}
}

func (h GetLeadTimeDefaultsQueryHandler) Handle(ctx context.Context, query GetLeadTimeDefaultsQuery) (leadtime.Profile, error) {
	if err := query.Validate(); err != nil {
		return leadtime.Profile{}, err
	}
	return h.resolver.Global(ctx), nil
}
