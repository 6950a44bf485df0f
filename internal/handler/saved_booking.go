package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cityhop/internal/model"
	"cityhop/internal/service"
	"cityhop/internal/slug"

	"github.com/gin-gonic/gin"
)

type togglePlaceRequest struct {
	Name        string  `json:"name" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description"`
}

// ToggleSaved обработчик для POST /api/saved/toggle — сохраняет место или
// убирает его из сохраненных. Тело запроса — снимок данных места с экрана.
func (h *Handler) ToggleSaved(c *gin.Context) {
	var req togglePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите название места и город"})
		return
	}
	userID := currentUserID(c)
	key := slug.PlaceKey(req.City, req.Name)

	state, err := h.SavedPlaceService.CheckSaved(userID, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось проверить место"})
		return
	}
	place := model.SavedPlace{
		PlaceKey:    key,
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Description: req.Description,
	}
	newState, err := h.SavedPlaceService.Toggle(userID, state, place)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Войдите, чтобы сохранять места"})
		case errors.Is(err, service.ErrToggleInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Операция уже выполняется"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить сохраненные места"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": newState.Saved, "row_id": newState.RowID})
}

type createBookingRequest struct {
	HotelName       string `json:"hotel_name"`
	City            string `json:"city" binding:"required"`
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

type updateBookingRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// ListBookings обработчик для GET /api/bookings?city= — брони одного города.
func (h *Handler) ListBookings(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите город (параметр city)"})
		return
	}
	bookings, err := h.BookingService.ListByCity(city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирования"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking обработчик для POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите город бронирования"})
		return
	}
	id, err := h.BookingService.Create(
		req.HotelName, req.City, req.CustomerName, req.CustomerAddress, req.StartDate, req.EndDate,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать бронирование"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateBooking обработчик для PUT /api/bookings/:id — правка данных клиента.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бронирования"})
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	if err := h.BookingService.Update(id, req.CustomerName, req.CustomerAddress, req.StartDate, req.EndDate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить бронирование"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteBooking обработчик для DELETE /api/bookings/:id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бронирования"})
		return
	}
	if err := h.BookingService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить бронирование"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
