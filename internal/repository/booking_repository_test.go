package repository

import (
	"testing"

	"cityhop/internal/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestBookingRepo(t *testing.T) *BookingRepository {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := NewBookingRepository(db)
	require.NoError(t, repo.InitSchema())
	return repo
}

func TestBookingRepository_CreateAndList(t *testing.T) {
	repo := newTestBookingRepo(t)

	id, err := repo.Create(&model.Booking{
		HotelName:       "CityHop Stay Hotel",
		City:            "tokyo",
		CustomerName:    "A",
		CustomerAddress: "B",
		StartDate:       "2025-10-01",
		EndDate:         "2025-10-05",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, id, 1)

	bookings, err := repo.ListByCity("tokyo")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	got := bookings[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "CityHop Stay Hotel", got.HotelName)
	assert.Equal(t, "tokyo", got.City)
	assert.Equal(t, "A", got.CustomerName)
	assert.Equal(t, "B", got.CustomerAddress)
	assert.Equal(t, "2025-10-01", got.StartDate)
	assert.Equal(t, "2025-10-05", got.EndDate)
}

func TestBookingRepository_ListFiltersByCityExactMatch(t *testing.T) {
	repo := newTestBookingRepo(t)

	for _, city := range []string{"tokyo", "tokyo", "paris"} {
		_, err := repo.Create(&model.Booking{
			HotelName:    gofakeit.Company(),
			City:         city,
			CustomerName: gofakeit.Name(),
		})
		require.NoError(t, err)
	}

	tokyo, err := repo.ListByCity("tokyo")
	require.NoError(t, err)
	assert.Len(t, tokyo, 2)
	// порядок создания: по возрастанию ID
	assert.Less(t, tokyo[0].ID, tokyo[1].ID)

	// точное совпадение, без нормализации регистра
	upper, err := repo.ListByCity("Tokyo")
	require.NoError(t, err)
	assert.Empty(t, upper)
}

func TestBookingRepository_AcceptsArbitraryText(t *testing.T) {
	repo := newTestBookingRepo(t)

	// пустые строки и произвольный текст сохраняются как есть
	id, err := repo.Create(&model.Booking{City: "tokyo", StartDate: "not a date"})
	require.NoError(t, err)

	bookings, err := repo.ListByCity("tokyo")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, id, bookings[0].ID)
	assert.Equal(t, "", bookings[0].HotelName)
	assert.Equal(t, "not a date", bookings[0].StartDate)
}

func TestBookingRepository_UpdateKeepsHotelAndCity(t *testing.T) {
	repo := newTestBookingRepo(t)

	id, err := repo.Create(&model.Booking{
		HotelName:       "CityHop Stay Hotel",
		City:            "paris",
		CustomerName:    gofakeit.Name(),
		CustomerAddress: gofakeit.Address().Address,
		StartDate:       "2025-01-01",
		EndDate:         "2025-01-02",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Update(id, "Новое имя", "Новый адрес", "2025-02-01", "2025-02-03"))

	bookings, err := repo.ListByCity("paris")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	got := bookings[0]
	assert.Equal(t, "CityHop Stay Hotel", got.HotelName)
	assert.Equal(t, "paris", got.City)
	assert.Equal(t, "Новое имя", got.CustomerName)
	assert.Equal(t, "Новый адрес", got.CustomerAddress)
	assert.Equal(t, "2025-02-01", got.StartDate)
	assert.Equal(t, "2025-02-03", got.EndDate)
}

func TestBookingRepository_UpdateMissingIDIsNoOp(t *testing.T) {
	repo := newTestBookingRepo(t)
	assert.NoError(t, repo.Update(12345, "x", "y", "z", "w"))
}

func TestBookingRepository_DeleteIsIdempotent(t *testing.T) {
	repo := newTestBookingRepo(t)

	id, err := repo.Create(&model.Booking{City: "tokyo"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	bookings, err := repo.ListByCity("tokyo")
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// повторное удаление — no-op
	assert.NoError(t, repo.Delete(id))
}
