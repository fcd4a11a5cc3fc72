package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/staffdesk/employee_directory/internal/bootstrap"
	"github.com/staffdesk/employee_directory/internal/config"
	"github.com/staffdesk/employee_directory/internal/database"
	"github.com/staffdesk/employee_directory/internal/logger"
	"github.com/staffdesk/employee_directory/internal/storage/postgres"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear")
	preset := flag.String("preset", "medium", "Data preset: small, medium, large")
	employees := flag.Int("employees", 0, "Number of employees (overrides preset)")

	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		logger.WarnLog(ctx, "no .env file loaded: %v", err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	services := bootstrap.NewServices(postgres.NewStores(db), logger.NewLogs())
	seeder := database.NewDataSeeder(
		services.Employees,
		services.Departments,
		services.Positions,
		services.Skills,
		services.Salaries,
		services.Addresses,
	)

	switch *action {
	case "seed":
		count := *employees
		if count <= 0 {
			count = database.GetPresetConfig(database.SeedPreset(*preset))
		}
		fmt.Printf("seeding %d employees\n", count)
		if err := seeder.SeedData(ctx, count); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}

	case "clear":
		fmt.Print("This deletes every employee. Continue? (yes/no): ")
		var response string
		fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Cancelled.")
			return
		}
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("clear failed: %v", err)
		}

	default:
		fmt.Printf("unknown action: %s\n", *action)
		flag.PrintDefaults()
	}
}
