package config

import (
	"os"
	"time"

	"preplabel-backend/internal/api/handlers"
	"preplabel-backend/internal/api/routes"
	"preplabel-backend/internal/middleware"
	"preplabel-backend/internal/utils"
	"preplabel-backend/internal/utils/storage"
	"preplabel-backend/pkg/catalog"
	"preplabel-backend/pkg/jwt"
	"preplabel-backend/pkg/label"
	"preplabel-backend/pkg/midtrans"
	"preplabel-backend/pkg/notification"
	"preplabel-backend/pkg/printer"
	"preplabel-backend/pkg/recipe"
	"preplabel-backend/pkg/task"
	"preplabel-backend/pkg/team"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	teamRepository := team.NewTeamRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	labelRepository := label.NewLabelRepository(db)
	printerRepository := printer.NewPrinterRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	taskRepository := task.NewTaskRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	notificationService := notification.NewNotificationService(notificationRepository)
	teamService := team.NewTeamService(teamRepository, jwtService, notificationService, s3)
	catalogService := catalog.NewCatalogService(catalogRepository)
	printerService := printer.NewPrinterService(printerRepository, notificationService)
	labelService := label.NewLabelService(labelRepository, catalogRepository, printerService)
	midtransService := midtrans.NewMidtransService(midtransRepository, notificationService)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	taskService := task.NewTaskService(taskRepository)

	// Handler
	teamHandler := handlers.NewTeamHandler(teamService, validator)
	labelHandler := handlers.NewLabelHandler(labelService, teamService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	printerHandler := handlers.NewPrinterHandler(printerService, teamService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, teamService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		TeamHandler:         teamHandler,
		LabelHandler:        labelHandler,
		CatalogHandler:      catalogHandler,
		PrinterHandler:      printerHandler,
		MidtransHandler:     midtransHandler,
		NotificationHandler: notificationHandler,
		RecipeHandler:       recipeHandler,
		TaskHandler:         taskHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
