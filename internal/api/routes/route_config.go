package routes

import (
	"github.com/gofiber/fiber/v2"

	"preplabel-backend/domain"
	"preplabel-backend/internal/api/handlers"
	"preplabel-backend/internal/middleware"
	"preplabel-backend/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	TeamHandler         handlers.TeamHandler
	LabelHandler        handlers.LabelHandler
	CatalogHandler      handlers.CatalogHandler
	PrinterHandler      handlers.PrinterHandler
	MidtransHandler     handlers.MidtransHandler
	NotificationHandler handlers.NotificationHandler
	RecipeHandler       handlers.RecipeHandler
	TaskHandler         handlers.TaskHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Team()
	c.Labels()
	c.Catalog()
	c.Printers()
	c.Subscriptions()
	c.Notifications()
	c.Recipes()
	c.Tasks()
	c.GuestRoute()
}

func (c *Config) Team() {
	team := c.App.Group("/api/v1/team")
	{
		team.Post("/register", c.TeamHandler.Register)
		team.Post("/login", c.TeamHandler.Login)
		team.Post("/invite/accept", c.TeamHandler.AcceptInvite)

		auth := team.Group("", c.Middleware.AuthMiddleware(c.JWTService))
		auth.Get("/me", c.TeamHandler.Me)
		auth.Get("/members", c.TeamHandler.GetMembers)
		auth.Post("/invite", c.Middleware.RoleMiddleware(domain.RoleOwner, domain.RoleManager), c.TeamHandler.InviteMember)
		auth.Patch("/members/:id", c.Middleware.RoleMiddleware(domain.RoleOwner, domain.RoleManager), c.TeamHandler.UpdateMember)
		auth.Delete("/members/:id", c.Middleware.RoleMiddleware(domain.RoleOwner), c.TeamHandler.RemoveMember)
		auth.Post("/pin/verify", c.TeamHandler.VerifyPin)
		auth.Put("/pin", c.TeamHandler.SetPin)
		auth.Post("/avatar", c.TeamHandler.UploadAvatar)
	}
}

func (c *Config) Labels() {
	labels := c.App.Group("/api/v1/labels", c.Middleware.AuthMiddleware(c.JWTService))

	labels.Post("/print", c.LabelHandler.QuickPrint)
	labels.Get("", c.LabelHandler.GetLabels)
	labels.Get("/expiring", c.LabelHandler.GetExpiringSoon)
	labels.Post("/:id/consume", c.LabelHandler.ConsumeLabel)
	labels.Post("/:id/discard", c.LabelHandler.DiscardLabel)
	labels.Post("/:id/extend", c.LabelHandler.ExtendLabel)
	labels.Post("/bulk/consume", c.LabelHandler.BulkConsume)
	labels.Post("/bulk/discard", c.LabelHandler.BulkDiscard)

	labels.Post("/drafts", c.LabelHandler.SaveDraft)
	labels.Get("/drafts", c.LabelHandler.GetDrafts)
	labels.Delete("/drafts/:id", c.LabelHandler.DeleteDraft)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog", c.Middleware.AuthMiddleware(c.JWTService))

	products := catalog.Group("/products")
	products.Post("", c.CatalogHandler.CreateProduct)
	products.Get("", c.CatalogHandler.GetProducts)
	products.Get("/check-duplicate", c.CatalogHandler.CheckDuplicateProduct)
	products.Post("/similar", c.CatalogHandler.FindSimilarProducts)
	products.Post("/merge", c.Middleware.RoleMiddleware(domain.RoleOwner, domain.RoleManager), c.CatalogHandler.MergeProducts)
	products.Get("/:id", c.CatalogHandler.GetProductDetails)
	products.Put("/:id", c.CatalogHandler.UpdateProduct)
	products.Delete("/:id", c.CatalogHandler.DeleteProduct)
	products.Put("/:id/allergens", c.CatalogHandler.AssignAllergens)

	catalog.Post("/categories", c.CatalogHandler.CreateCategory)
	catalog.Get("/categories", c.CatalogHandler.GetCategories)
	catalog.Delete("/categories/:id", c.CatalogHandler.DeleteCategory)
	catalog.Post("/subcategories", c.CatalogHandler.CreateSubcategory)

	catalog.Post("/allergens", c.CatalogHandler.CreateAllergen)
	catalog.Get("/allergens", c.CatalogHandler.GetAllergens)

	catalog.Post("/units", c.CatalogHandler.CreateUnit)
	catalog.Get("/units", c.CatalogHandler.GetUnits)
}

func (c *Config) Printers() {
	printers := c.App.Group("/api/v1/printers", c.Middleware.AuthMiddleware(c.JWTService))

	printers.Post("", c.PrinterHandler.CreatePrinter)
	printers.Get("", c.PrinterHandler.GetPrinters)
	printers.Post("/discover", c.PrinterHandler.DiscoverPrinters)
	printers.Put("/:id", c.PrinterHandler.UpdatePrinter)
	printers.Delete("/:id", c.PrinterHandler.DeletePrinter)
	printers.Post("/:id/test-print", c.PrinterHandler.TestPrint)
}

func (c *Config) Subscriptions() {
	subscriptions := c.App.Group("/api/v1/subscriptions", c.Middleware.AuthMiddleware(c.JWTService))

	subscriptions.Get("/plans", c.MidtransHandler.GetPlans)
	subscriptions.Post("", c.Middleware.RoleMiddleware(domain.RoleOwner), c.MidtransHandler.CreateTransaction)
	subscriptions.Get("/status", c.MidtransHandler.GetSubscriptionStatus)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/:id/read", c.NotificationHandler.MarkRead)
	notifications.Post("/read-all", c.NotificationHandler.MarkAllRead)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/v1/tasks", c.Middleware.AuthMiddleware(c.JWTService))

	tasks.Post("", c.TaskHandler.CreateTask)
	tasks.Get("", c.TaskHandler.GetTasks)
	tasks.Put("/:id", c.TaskHandler.UpdateTask)
	tasks.Delete("/:id", c.TaskHandler.DeleteTask)
	tasks.Post("/:id/complete", c.TaskHandler.CompleteTask)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
