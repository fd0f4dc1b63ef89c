package cmd

import (
	"log/slog"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) tourUoWFactory() commands.TourUoWFactory {
	return FuncTourUoWFactory(func() commands.TourUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) approvalUoWFactory() commands.ApprovalUoWFactory {
	return FuncApprovalUoWFactory(func() commands.ApprovalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTourCommandHandler() commands.CreateTourCommandHandler {
	return commands.NewCreateTourCommandHandler(c.tourUoWFactory())
}

func (c *CompositionRoot) CreateEditTourCommandHandler() commands.EditTourCommandHandler {
	return commands.NewEditTourCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateChangeTourStatusCommandHandler() (commands.ChangeTourStatusCommandHandler, error) {
	coordinator, err := services.NewCascadeCoordinator(c.config.CancellationPolicy)
	if err != nil {
		return commands.ChangeTourStatusCommandHandler{}, err
	}
	return commands.NewChangeTourStatusCommandHandler(c.bookingUoWFactory(), coordinator, c.logger), nil
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.uowFactoryAll(), services.NewBookingLifecycle())
}

func (c *CompositionRoot) CreateEditBookingCommandHandler() commands.EditBookingCommandHandler {
	return commands.NewEditBookingCommandHandler(c.bookingUoWFactory(), services.NewBookingLifecycle())
}

func (c *CompositionRoot) CreateBookingActionCommandHandler() commands.BookingActionCommandHandler {
	return commands.NewBookingActionCommandHandler(c.bookingUoWFactory(), services.NewBookingLifecycle())
}

func (c *CompositionRoot) CreateRequestApprovalCommandHandler() commands.RequestApprovalCommandHandler {
	return commands.NewRequestApprovalCommandHandler(c.approvalUoWFactory(), services.NewApprovalGate())
}

func (c *CompositionRoot) CreateDecideApprovalCommandHandler() commands.DecideApprovalCommandHandler {
	return commands.NewDecideApprovalCommandHandler(c.approvalUoWFactory(), services.NewApprovalGate())
}

func (c *CompositionRoot) CreateReconcileTourCapacityCommandHandler() commands.ReconcileTourCapacityCommandHandler {
	return commands.NewReconcileTourCapacityCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateGetTourQueryHandler() queries.GetTourQueryHandler {
	return queries.NewGetTourQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTourBookingsQueryHandler() queries.ListTourBookingsQueryHandler {
	return queries.NewListTourBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCapacityDriftQueryHandler() queries.GetCapacityDriftQueryHandler {
	return queries.NewGetCapacityDriftQueryHandler(c.gormDB)
}

// CreateRouter wires every use case into the echo HTTP adapter.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	changeTourStatus, err := c.CreateChangeTourStatusCommandHandler()
	if err != nil {
		return nil, err
	}

	auth, err := httpin.NewAuthenticator(c.config.JWTSecret)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateTour:       c.CreateCreateTourCommandHandler(),
		EditTour:         c.CreateEditTourCommandHandler(),
		ChangeTourStatus: changeTourStatus,
		CreateBooking:    c.CreateCreateBookingCommandHandler(),
		EditBooking:      c.CreateEditBookingCommandHandler(),
		BookingActions:   c.CreateBookingActionCommandHandler(),
		RequestApproval:  c.CreateRequestApprovalCommandHandler(),
		DecideApproval:   c.CreateDecideApprovalCommandHandler(),
		GetTour:          c.CreateGetTourQueryHandler(),
		ListTourBookings: c.CreateListTourBookingsQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, auth, c.logger)
}

// CreateJobManager sets up the capacity audit; it reconciles only when
// CapacityAutoReconcile is on.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	finder := c.CreateGetCapacityDriftQueryHandler()
	if !c.config.CapacityAutoReconcile {
		return jobs.NewJobManager(finder, nil, c.config.CapacityAuditSchedule, c.logger)
	}
	reconciler := c.CreateReconcileTourCapacityCommandHandler()
	return jobs.NewJobManager(finder, &reconciler, c.config.CapacityAuditSchedule, c.logger)
}

type FuncTourUoWFactory func() commands.TourUoW

func (f FuncTourUoWFactory) Create() commands.TourUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncApprovalUoWFactory func() commands.ApprovalUoW

func (f FuncApprovalUoWFactory) Create() commands.ApprovalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
