package handler

import (
	"errors"
	"net/http"

	"cityhop/internal/service"
	"cityhop/internal/slug"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	CatalogService    *service.CatalogService
	SavedPlaceService *service.SavedPlaceService
	BookingService    *service.BookingService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, us *service.UserService, cs *service.CatalogService,
	sps *service.SavedPlaceService, bs *service.BookingService) *Handler {
	return &Handler{
		AuthService:       as,
		UserService:       us,
		CatalogService:    cs,
		SavedPlaceService: sps,
		BookingService:    bs,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register обработчик для POST /api/auth/register — создает аккаунт.
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите email и пароль"})
		return
	}
	user, err := h.AuthService.Register(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать аккаунт"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// Login обработчик для POST /api/auth/login — выдает токен сессии.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите email и пароль"})
		return
	}
	user, token, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка входа"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "id": user.ID, "email": user.Email})
}

// Me обработчик для GET /api/me — возвращает текущего пользователя.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.UserService.GetByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить пользователя"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email})
}

// ListCities обработчик для GET /api/cities — список всех городов каталога.
func (h *Handler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, h.CatalogService.ListCities())
}

// GetCity обработчик для GET /api/cities/:slug.
func (h *Handler) GetCity(c *gin.Context) {
	city, ok := h.CatalogService.GetCity(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Город не найден"})
		return
	}
	c.JSON(http.StatusOK, city)
}

// CityEvents обработчик для GET /api/cities/:slug/events.
func (h *Handler) CityEvents(c *gin.Context) {
	events, ok := h.CatalogService.GetEvents(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Город не найден"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// CityTransport обработчик для GET /api/cities/:slug/transport.
func (h *Handler) CityTransport(c *gin.Context) {
	transport, ok := h.CatalogService.GetTransport(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Город не найден"})
		return
	}
	c.JSON(http.StatusOK, transport)
}

// CityRoute обработчик для GET /api/cities/:slug/route — порядок обхода мест.
func (h *Handler) CityRoute(c *gin.Context) {
	route, ok := h.CatalogService.SuggestRoute(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Город не найден"})
		return
	}
	c.JSON(http.StatusOK, route)
}

// ListSaved обработчик для GET /api/saved — сохраненные места пользователя.
func (h *Handler) ListSaved(c *gin.Context) {
	places, err := h.SavedPlaceService.ListSaved(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить сохраненные места"})
		return
	}
	c.JSON(http.StatusOK, places)
}

// CheckSaved обработчик для GET /api/saved/check?city=&place= — проверка флага.
func (h *Handler) CheckSaved(c *gin.Context) {
	key := slug.PlaceKey(c.Query("city"), c.Query("place"))
	state, err := h.SavedPlaceService.CheckSaved(currentUserID(c), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось проверить место"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": state.Saved, "row_id": state.RowID})
}
