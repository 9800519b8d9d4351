package queries

import (
	"context"
	"errors"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/guard"
)

var ErrGetEffectiveLeadTimesQueryIsNotConstructed = errors.New(
	"GetEffectiveLeadTimesQuery must be created via NewGetEffectiveLeadTimesQuery constructor",
)

// GetEffectiveLeadTimesQuery resolves the lead times that apply to a product.
type GetEffectiveLeadTimesQuery struct {
	productID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetEffectiveLeadTimesQuery(productID kernel.UUID) (GetEffectiveLeadTimesQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetEffectiveLeadTimesQuery{}, err
	}
	return GetEffectiveLeadTimesQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEffectiveLeadTimesQuery) Validate() error {
	return q.guard.Validate(ErrGetEffectiveLeadTimesQueryIsNotConstructed)
}

func (q GetEffectiveLeadTimesQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetEffectiveLeadTimesQueryHandler merges the product override over the global profile.
type GetEffectiveLeadTimesQueryHandler struct {
	resolver ProfileResolver
}

func NewGetEffectiveLeadTimesQueryHandler(resolver ProfileResolver) GetEffectiveLeadTimesQueryHandler {
	return GetEffectiveLeadTimesQueryHandler{resolver: resolver}
}

func (h GetEffectiveLeadTimesQueryHandler) Handle(
	ctx context.Context,
	query GetEffectiveLeadTimesQuery,
) (leadtime.Profile, error) {
	if err := query.Validate(); err != nil {
		return leadtime.Profile{}, err
	}
	productID := query.ProductID()
	return h.resolver.Effective(ctx, &productID), nil
}
