package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/staffdesk/employee_directory/internal/config"
	"github.com/staffdesk/employee_directory/internal/database"
	"github.com/staffdesk/employee_directory/internal/export"
	"github.com/staffdesk/employee_directory/internal/handler"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/repository"
	"github.com/staffdesk/employee_directory/internal/service"
	"github.com/staffdesk/employee_directory/internal/storage"
	"github.com/staffdesk/employee_directory/internal/storage/postgres"
)

type App struct {
	Echo *echo.Echo
	DB   *sql.DB
}

// Services bundles the service layer. The seeder wires the same graph
// without the HTTP surface.
type Services struct {
	Employees   *service.EmployeeService
	Departments *service.DepartmentService
	Positions   *service.PositionService
	Skills      *service.SkillService
	Salaries    *service.SalaryService
	Addresses   *service.AddressService
}

// NewServices wires repositories and services over stores.
func NewServices(stores storage.Stores, logs *logger.Logs) *Services {
	departments := service.NewDepartmentService(repository.NewDepartmentRepository(stores, logs), logs)
	positions := service.NewPositionService(repository.NewPositionRepository(stores, logs), logs)
	skills := service.NewSkillService(repository.NewSkillRepository(stores, logs), logs)
	salaries := service.NewSalaryService(repository.NewSalaryRepository(stores, logs), logs)
	addresses := service.NewAddressService(repository.NewAddressRepository(stores, logs), logs)
	employees := service.NewEmployeeService(
		repository.NewEmployeeRepository(stores, logs),
		repository.NewEmployeePhoneNumberRepository(stores, logs),
		repository.NewEmployeeAddressRepository(stores, logs),
		departments, positions, skills, salaries, logs,
	)
	return &Services{
		Employees:   employees,
		Departments: departments,
		Positions:   positions,
		Skills:      skills,
		Salaries:    salaries,
		Addresses:   addresses,
	}
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		logger.WarnLog(ctx, "no .env file loaded: %v", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	db, err := database.NewPostgresDB()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logs := logger.NewLogs()
	services := NewServices(postgres.NewStores(db), logs)

	layout := export.DefaultLayout()
	if path := config.DefaultEnvConfig.EXPORT_LAYOUT_PATH; path != "" {
		layout, err = export.LoadLayout(path)
		if err != nil {
			return fmt.Errorf("failed to load export layout: %w", err)
		}
	}

	employeeHandler := handler.NewEmployeeHandler(services.Employees, export.NewEmployeeExporter(layout))
	departmentHandler := handler.NewDepartmentHandler(services.Departments)
	lookupHandler := handler.NewLookupHandler(services.Positions, services.Skills, services.Salaries)
	addressHandler := handler.NewAddressHandler(services.Addresses)

	a.RegisterMiddlewares()
	a.RegisterRoutes(employeeHandler, departmentHandler, lookupHandler, addressHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(
	employees *handler.EmployeeHandler,
	departments *handler.DepartmentHandler,
	lookups *handler.LookupHandler,
	addresses *handler.AddressHandler,
) {
	a.Echo.POST("/employees", employees.CreateHandler)
	a.Echo.GET("/employees", employees.ListHandler)
	a.Echo.GET("/employees/export", employees.ExportHandler)
	a.Echo.GET("/employees/:id", employees.GetHandler)
	a.Echo.PUT("/employees/:id", employees.UpdateHandler)
	a.Echo.DELETE("/employees/:id", employees.DeleteHandler)
	a.Echo.POST("/employees/:id/phone-numbers", employees.AttachPhoneNumberHandler)
	a.Echo.POST("/employees/:id/addresses", employees.AttachAddressHandler)

	a.Echo.POST("/departments", departments.CreateHandler)
	a.Echo.GET("/departments", departments.ListHandler)
	a.Echo.GET("/departments/:id", departments.GetHandler)
	a.Echo.PUT("/departments/:id", departments.UpdateHandler)
	a.Echo.DELETE("/departments/:id", departments.DeleteHandler)

	a.Echo.POST("/positions", lookups.CreatePositionHandler)
	a.Echo.GET("/positions", lookups.ListPositionsHandler)
	a.Echo.DELETE("/positions/:id", lookups.DeletePositionHandler)
	a.Echo.POST("/skills", lookups.CreateSkillHandler)
	a.Echo.GET("/skills", lookups.ListSkillsHandler)
	a.Echo.DELETE("/skills/:id", lookups.DeleteSkillHandler)
	a.Echo.POST("/salaries", lookups.CreateSalaryHandler)
	a.Echo.GET("/salaries", lookups.ListSalariesHandler)
	a.Echo.DELETE("/salaries/:id", lookups.DeleteSalaryHandler)

	a.Echo.POST("/addresses", addresses.CreateHandler)
	a.Echo.GET("/addresses", addresses.ListHandler)
	a.Echo.GET("/addresses/:id", addresses.GetHandler)
	a.Echo.PUT("/addresses/:id", addresses.UpdateHandler)
	a.Echo.DELETE("/addresses/:id", addresses.DeleteHandler)
}

func (a *App) Run() error {
	defer a.DB.Close()
	return a.Echo.Start(fmt.Sprintf(":%d", config.DefaultEnvConfig.APP_PORT))
}
