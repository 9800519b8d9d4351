package commands

import (
	"errors"
	"strings"

	"apparel/internal/core/domain/model/kernel"
	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"
)

var ErrSetProductLeadTimesCommandIsNotConstructed = errors.New(
	"SetProductLeadTimesCommand must be created via NewSetProductLeadTimesCommand constructor",
)

// SetProductLeadTimesCommand layers a partial override over a product's stored override.
type SetProductLeadTimesCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	override  leadtime.Override
	actorID   string

	guard guard.ConstructorGuard
}

func NewSetProductLeadTimesCommand(
	productID kernel.UUID,
	override leadtime.Override,
	actorID string,
) (SetProductLeadTimesCommand, error) {
	actorID = strings.TrimSpace(actorID)
	var actorErr error
	if actorID == "" {
		actorErr = errs.NewValueIsRequiredError("actorId")
	}
	if err := errors.Join(productID.Validate(), actorErr); err != nil {
		return SetProductLeadTimesCommand{}, err
	}

	return SetProductLeadTimesCommand{
		productID: productID,
		override:  override,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetProductLeadTimesCommand) Validate() error {
	return c.guard.Validate(ErrSetProductLeadTimesCommandIsNotConstructed)
}

func (c SetProductLeadTimesCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c SetProductLeadTimesCommand) Override() leadtime.Override {
	return c.override
}

func (c SetProductLeadTimesCommand) ActorID() string {
	return c.actorID
}
