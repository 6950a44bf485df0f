// Package slug реализует нормализацию названий городов и мест
// в стабильную строковую форму, используемую как идентификатор.
package slug

import "strings"

// Slug нормализует строку: нижний регистр, обрезка краевых пробелов,
// внутренние последовательности пробельных символов заменяются одним дефисом.
// Функция чистая и тотальная: Slug("") == "", Slug(Slug(s)) == Slug(s).
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// PlaceKey строит составной ключ места: slug(город)|slug(место).
// Ключ не зависит от форматирования отображаемых названий.
func PlaceKey(city, place string) string {
	return Slug(city) + "|" + Slug(place)
}
