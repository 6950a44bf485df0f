package slug

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "new-york", Slug("  New   York "))
	assert.Equal(t, "tokyo", Slug("Tokyo"))
	assert.Equal(t, "cherrapunji-(sohra)", Slug("Cherrapunji (Sohra)"))
	assert.Equal(t, "", Slug(""))
	assert.Equal(t, "", Slug("   "))
	assert.Equal(t, "a-b-c", Slug("a\tb\nc"))
}

func TestSlug_Idempotent(t *testing.T) {
	inputs := []string{"  New   York ", "Tokyo", "", "Mount Victoria Lookout"}
	for i := 0; i < 20; i++ {
		inputs = append(inputs, gofakeit.City(), gofakeit.Sentence(4))
	}
	for _, s := range inputs {
		assert.Equal(t, Slug(s), Slug(Slug(s)), "Slug должен быть идемпотентен: %q", s)
	}
}

func TestPlaceKey(t *testing.T) {
	assert.Equal(t, "new-york|central-park", PlaceKey(" New York", "Central  Park "))
	// чистая функция: повторные вызовы дают тот же ключ
	for i := 0; i < 5; i++ {
		assert.Equal(t, "tokyo|tokyo-skytree", PlaceKey("Tokyo", "Tokyo Skytree"))
	}
}
