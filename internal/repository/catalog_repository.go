package repository

import (
	_ "embed"
	"fmt"

	"cityhop/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogData []byte

type catalogFile struct {
	Cities []model.City `yaml:"cities"`
}

// CatalogRepository предоставляет доступ к статическому каталогу городов.
// Данные встроены в бинарник и разбираются один раз при создании.
type CatalogRepository struct {
	cities []model.City
	bySlug map[string]*model.City
}

// NewCatalogRepository разбирает встроенный каталог и строит индекс по slug.
func NewCatalogRepository() (*CatalogRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogData, &file); err != nil {
		return nil, fmt.Errorf("не удалось разобрать каталог городов: %w", err)
	}
	r := &CatalogRepository{
		cities: file.Cities,
		bySlug: make(map[string]*model.City, len(file.Cities)),
	}
	for i := range r.cities {
		r.bySlug[r.cities[i].Slug] = &r.cities[i]
	}
	return r, nil
}

// ListCities возвращает все города каталога в порядке следования в файле.
func (r *CatalogRepository) ListCities() []model.City {
	return r.cities
}

// GetBySlug возвращает город по его slug.
func (r *CatalogRepository) GetBySlug(slug string) (*model.City, bool) {
	city, ok := r.bySlug[slug]
	return city, ok
}
