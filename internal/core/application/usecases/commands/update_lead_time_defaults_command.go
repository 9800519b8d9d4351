package commands

import (
	"errors"
	"strings"

	"apparel/internal/core/domain/model/leadtime"
	"apparel/internal/pkg/errs"
	"apparel/internal/pkg/guard"
)

var ErrUpdateLeadTimeDefaultsCommandIsNotConstructed = errors.New(
	"UpdateLeadTimeDefaultsCommand must be created via NewUpdateLeadTimeDefaultsCommand constructor",
)

// UpdateLeadTimeDefaultsCommand is the administrative partial update of the global
// lead-time profile. Fields absent from the override keep their current value.
type UpdateLeadTimeDefaultsCommand struct { //nolint:recvcheck //using for validation
	override leadtime.Override
	actorID  string

	guard guard.ConstructorGuard
}

// NewUpdateLeadTimeDefaultsCommand requires the identifier of the administrator.
func NewUpdateLeadTimeDefaultsCommand(override leadtime.Override, actorID string) (UpdateLeadTimeDefaultsCommand, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return UpdateLeadTimeDefaultsCommand{}, errs.NewValueIsRequiredError("actorId")
	}

	return UpdateLeadTimeDefaultsCommand{
		override: override,
		actorID:  actorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLeadTimeDefaultsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLeadTimeDefaultsCommandIsNotConstructed)
}

func (c UpdateLeadTimeDefaultsCommand) Override() leadtime.Override {
	return c.override
}

func (c UpdateLeadTimeDefaultsCommand) ActorID() string {
	return c.actorID
}
