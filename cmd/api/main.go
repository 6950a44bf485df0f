package main

import (
	"os"
	"path/filepath"
	"time"

	"cityhop/internal/config"
	"cityhop/internal/handler"
	"cityhop/internal/logger"
	"cityhop/internal/repository"
	"cityhop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // драйвер Postgres
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // встраиваемый движок для локальных бронирований
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Ошибка конфигурации: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Удаленное хранилище (сохраненные места, аккаунты)
	db, err := sqlx.Connect("postgres", cfg.PostgresDSN())
	if err != nil {
		logrus.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				logrus.Errorf("Не удалось прочитать миграцию %s: %v", file, readErr)
				continue
			}
			if _, execErr := db.Exec(string(content)); execErr != nil {
				logrus.Errorf("Миграция %s завершилась ошибкой: %v", file, execErr)
			} else {
				logrus.Infof("Миграция %s применена.", file)
			}
		}
	}

	// Локальная база бронирований: открывается один раз на процесс
	localDB, err := sqlx.Connect("sqlite", cfg.SQLitePath)
	if err != nil {
		logrus.Fatalf("Не удалось открыть локальную базу бронирований: %v", err)
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	savedPlaceRepo := repository.NewSavedPlaceRepository(db)
	bookingRepo := repository.NewBookingRepository(localDB)
	if err := bookingRepo.InitSchema(); err != nil {
		logrus.Fatalf("Не удалось инициализировать таблицу бронирований: %v", err)
	}
	catalogRepo, err := repository.NewCatalogRepository()
	if err != nil {
		logrus.Fatalf("Не удалось загрузить каталог городов: %v", err)
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	savedPlaceService := service.NewSavedPlaceService(savedPlaceRepo)
	bookingService := service.NewBookingService(bookingRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, userService, catalogService, savedPlaceService, bookingService)
	router := gin.Default()
	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/cities", h.ListCities)
		api.GET("/cities/:slug", h.GetCity)
		api.GET("/cities/:slug/events", h.CityEvents)
		api.GET("/cities/:slug/transport", h.CityTransport)
		api.GET("/cities/:slug/route", h.CityRoute)

		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings", h.CreateBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.DeleteBooking)

		private := api.Group("")
		private.Use(handler.AuthRequired(authService))
		{
			private.GET("/me", h.Me)
			private.GET("/saved", h.ListSaved)
			private.GET("/saved/check", h.CheckSaved)
			private.POST("/saved/toggle", h.ToggleSaved)
		}
	}
	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	if err := router.Run(":" + cfg.APIPort); err != nil {
		logrus.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
