package routes

import (
	"MediTrack-Backend/internal/api/handlers"
	"MediTrack-Backend/internal/middleware"
	"MediTrack-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	CaregiverHandler  handlers.CaregiverHandler
	MedicationHandler handlers.MedicationHandler
	DosingHandler     handlers.DosingHandler
	MealTimeHandler   handlers.MealTimeHandler
	ActivityHandler   handlers.ActivityHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Caregivers()
	c.Medications()
	c.MealTimes()
	c.Activity()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send-otp", c.UserHandler.SendOTP)
		user.Post("/verify-otp", c.UserHandler.VerifyOTP)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Caregivers() {
	links := c.App.Group("/api/v1/links", c.Middleware.AuthMiddleware(c.JWTService))

	links.Post("", c.CaregiverHandler.RequestLink)
	links.Patch("/:id", c.CaregiverHandler.RespondLink)
	links.Delete("/:id", c.CaregiverHandler.RevokeLink)
	links.Get("/patients", c.CaregiverHandler.GetPatients)
	links.Get("/caregivers", c.CaregiverHandler.GetCaregivers)
}

func (c *Config) Medications() {
	medications := c.App.Group("/api/v1/medications", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	medications.Post("", c.MedicationHandler.AddMedication)
	medications.Get("", c.MedicationHandler.GetMedications)
	medications.Get("/barcode/:code", c.MedicationHandler.ResolveBarcode)
	medications.Get("/:id", c.MedicationHandler.GetMedicationDetails)
	medications.Put("/:id", c.MedicationHandler.UpdateMedication)
	medications.Delete("/:id", c.MedicationHandler.DeleteMedication)

	// Special operations
	medications.Post("/image", c.MedicationHandler.UploadMedicationImage)
	medications.Post("/:id/barcode", c.MedicationHandler.RegenerateBarcode)
	medications.Get("/:id/dose-check", c.DosingHandler.CheckDose)
	medications.Post("/:id/dose", c.DosingHandler.LogDose)
}

func (c *Config) MealTimes() {
	mealTimes := c.App.Group("/api/v1/meal-times", c.Middleware.AuthMiddleware(c.JWTService))

	mealTimes.Get("", c.MealTimeHandler.GetMealTimes)
	mealTimes.Put("", c.MealTimeHandler.UpdateMealTimes)
}

func (c *Config) Activity() {
	activity := c.App.Group("/api/v1/activity", c.Middleware.AuthMiddleware(c.JWTService))
	activity.Get("", c.ActivityHandler.GetActivityFeed)

	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.ActivityHandler.GetNotifications)
	notifications.Patch("/:id/read", c.ActivityHandler.MarkNotificationRead)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
