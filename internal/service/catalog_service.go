package service

import (
	"math"

	"cityhop/internal/model"
	"cityhop/internal/repository"
)

// CatalogService содержит логику работы со статическим каталогом городов.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

// NewCatalogService создает новый сервис каталога.
func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// ListCities возвращает все города каталога.
func (s *CatalogService) ListCities() []model.City {
	return s.catalogRepo.ListCities()
}

// GetCity возвращает город по slug.
func (s *CatalogService) GetCity(slug string) (*model.City, bool) {
	return s.catalogRepo.GetBySlug(slug)
}

// GetEvents возвращает события города.
func (s *CatalogService) GetEvents(slug string) ([]model.Event, bool) {
	city, ok := s.catalogRepo.GetBySlug(slug)
	if !ok {
		return nil, false
	}
	return city.Events, true
}

// GetTransport возвращает транспортную справку города.
func (s *CatalogService) GetTransport(slug string) (*model.Transport, bool) {
	city, ok := s.catalogRepo.GetBySlug(slug)
	if !ok {
		return nil, false
	}
	return &city.Transport, true
}

// SuggestRoute предлагает порядок обхода достопримечательностей города по
// географической близости (наивный алгоритм: от первой точки к ближайшей
// непосещенной). Ничего не сохраняет, работает только со статическим каталогом.
func (s *CatalogService) SuggestRoute(slug string) ([]model.Place, bool) {
	city, ok := s.catalogRepo.GetBySlug(slug)
	if !ok {
		return nil, false
	}
	places := city.Places
	if len(places) < 2 {
		return places, true // нечего упорядочивать
	}
	ordered := []model.Place{places[0]}
	used := make([]bool, len(places))
	used[0] = true
	for i := 1; i < len(places); i++ {
		last := ordered[len(ordered)-1]
		minDist := math.MaxFloat64
		minIndex := -1
		for j, p := range places {
			if used[j] {
				continue
			}
			dx := last.Lat - p.Lat
			dy := last.Lon - p.Lon
			dist := dx*dx + dy*dy
			if dist < minDist {
				minDist = dist
				minIndex = j
			}
		}
		if minIndex >= 0 {
			used[minIndex] = true
			ordered = append(ordered, places[minIndex])
		}
	}
	return ordered, true
}
