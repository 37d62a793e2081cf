package config

import (
	"MediTrack-Backend/internal/api/handlers"
	"MediTrack-Backend/internal/api/routes"
	"MediTrack-Backend/internal/middleware"
	"MediTrack-Backend/internal/utils"
	"MediTrack-Backend/internal/utils/storage"
	"MediTrack-Backend/pkg/activity"
	"MediTrack-Backend/pkg/caregiver"
	"MediTrack-Backend/pkg/dosing"
	"MediTrack-Backend/pkg/jwt"
	"MediTrack-Backend/pkg/mealtime"
	"MediTrack-Backend/pkg/medication"
	"MediTrack-Backend/pkg/user"
	"os"
	"time"

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	clock := dosing.SystemClock()
	localClock := dosing.NewLocalClock(clock, utils.GetTimezoneOffsetMinutes())

	// Repository
	userRepository := user.NewUserRepository(db)
	caregiverRepository := caregiver.NewCaregiverRepository(db)
	medicationRepository := medication.NewMedicationRepository(db)
	mealTimeRepository := mealtime.NewMealTimeRepository(db)
	activityRepository := activity.NewActivityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	caregiverService := caregiver.NewCaregiverService(caregiverRepository, userRepository)
	medicationService := medication.NewMedicationService(
		medicationRepository,
		activityRepository,
		caregiverService,
		s3,
		clock,
	)
	mealTimeService := mealtime.NewMealTimeService(mealTimeRepository)
	activityService := activity.NewActivityService(activityRepository, caregiverService)
	dosingService := dosing.NewDosingService(
		medicationRepository,
		activityRepository,
		mealTimeRepository,
		caregiverService,
		localClock,
		utils.LogRejectedDoses(),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	caregiverHandler := handlers.NewCaregiverHandler(caregiverService, validator)
	medicationHandler := handlers.NewMedicationHandler(medicationService, validator)
	dosingHandler := handlers.NewDosingHandler(dosingService, validator)
	mealTimeHandler := handlers.NewMealTimeHandler(mealTimeService, validator)
	activityHandler := handlers.NewActivityHandler(activityService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		CaregiverHandler:  caregiverHandler,
		MedicationHandler: medicationHandler,
		DosingHandler:     dosingHandler,
		MealTimeHandler:   mealTimeHandler,
		ActivityHandler:   activityHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
