package cmd

import (
	"log/slog"
	"time"

	httpadapter "apparel/internal/adapters/in/http"
	"apparel/internal/adapters/out/postgres"
	"apparel/internal/adapters/out/postgres/leadtimerepo"
	"apparel/internal/adapters/out/postgres/orderrepo"
	"apparel/internal/core/application/usecases/commands"
	"apparel/internal/core/application/usecases/queries"
	"apparel/internal/core/domain/services"
	"apparel/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.OrderEventNotifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.OrderEventNotifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) leadTimeUoWFactory() commands.LeadTimeUoWFactory {
	return FuncLeadTimeUoWFactory(func() commands.LeadTimeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAddTimelineEntryCommandHandler() commands.AddTimelineEntryCommandHandler {
	return commands.NewAddTimelineEntryCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAddProductionUpdateCommandHandler() commands.AddProductionUpdateCommandHandler {
	return commands.NewAddProductionUpdateCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateLeadTimeDefaultsCommandHandler() commands.UpdateLeadTimeDefaultsCommandHandler {
	return commands.NewUpdateLeadTimeDefaultsCommandHandler(c.leadTimeUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSetProductLeadTimesCommandHandler() commands.SetProductLeadTimesCommandHandler {
	return commands.NewSetProductLeadTimesCommandHandler(c.leadTimeUoWFactory(), c.logger)
}

func (c *CompositionRoot) profileResolver() queries.ProfileResolver {
	return queries.NewProfileResolver(leadtimerepo.NewGormLeadTimeRepository(c.gormDB), c.logger)
}

func (c *CompositionRoot) CreateGetLeadTimeDefaultsQueryHandler() queries.GetLeadTimeDefaultsQueryHandler {
	return queries.NewGetLeadTimeDefaultsQueryHandler(c.profileResolver())
}

func (c *CompositionRoot) CreateGetEffectiveLeadTimesQueryHandler() queries.GetEffectiveLeadTimesQueryHandler {
	return queries.NewGetEffectiveLeadTimesQueryHandler(c.profileResolver())
}

func (c *CompositionRoot) CreateGetOrderEtaQueryHandler() queries.GetOrderEtaQueryHandler {
	return queries.NewGetOrderEtaQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.profileResolver(),
		services.NewEtaCalculator(),
		c.now,
	)
}

func (c *CompositionRoot) CreateGetLateOrdersQueryHandler() queries.GetLateOrdersQueryHandler {
	return queries.NewGetLateOrdersQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.profileResolver(),
		services.NewEtaCalculator(),
		c.now,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	confirmPayment := c.CreateConfirmPaymentCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	addTimelineEntry := c.CreateAddTimelineEntryCommandHandler()
	addProductionUpdate := c.CreateAddProductionUpdateCommandHandler()
	updateLeadTimeDefaults := c.CreateUpdateLeadTimeDefaultsCommandHandler()
	setProductLeadTimes := c.CreateSetProductLeadTimesCommandHandler()

	return httpadapter.Handlers{
		CreateOrder:            &createOrder,
		ConfirmPayment:         &confirmPayment,
		ChangeOrderStatus:      &changeOrderStatus,
		AddTimelineEntry:       &addTimelineEntry,
		AddProductionUpdate:    &addProductionUpdate,
		UpdateLeadTimeDefaults: &updateLeadTimeDefaults,
		SetProductLeadTimes:    &setProductLeadTimes,

		GetLeadTimeDefaults:   c.CreateGetLeadTimeDefaultsQueryHandler(),
		GetEffectiveLeadTimes: c.CreateGetEffectiveLeadTimesQueryHandler(),
		GetOrderEta:           c.CreateGetOrderEtaQueryHandler(),
		GetOrderTimeline:      c.CreateGetOrderTimelineQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLeadTimeUoWFactory func() commands.LeadTimeUoW

func (f FuncLeadTimeUoWFactory) Create() commands.LeadTimeUoW {
	return f()
}
