package repository

import (
	"fmt"

	"cityhop/internal/model"

	"github.com/jmoiron/sqlx"
)

// Схема создается идемпотентно при каждом старте процесса.
const bookingSchema = `
CREATE TABLE IF NOT EXISTS bookings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    hotel_name TEXT,
    city TEXT,
    customer_name TEXT,
    customer_address TEXT,
    start_date TEXT,
    end_date TEXT
);`

// BookingRepository обеспечивает доступ к бронированиям в локальной
// встраиваемой базе данных (SQLite). Движок сериализует запись сам,
// отдельные мьютексы не нужны.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// InitSchema создает таблицу бронирований, если ее еще нет.
func (r *BookingRepository) InitSchema() error {
	if _, err := r.db.Exec(bookingSchema); err != nil {
		return fmt.Errorf("не удалось создать таблицу бронирований: %w", err)
	}
	return nil
}

// Create добавляет бронирование и возвращает присвоенный ID.
// Содержимое полей не проверяется и сохраняется как есть.
func (r *BookingRepository) Create(b *model.Booking) (int, error) {
	res, err := r.db.Exec(
		`INSERT INTO bookings (hotel_name, city, customer_name, customer_address, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.HotelName, b.City, b.CustomerName, b.CustomerAddress, b.StartDate, b.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить ID бронирования: %w", err)
	}
	return int(id), nil
}

// ListByCity возвращает бронирования с точным совпадением поля city,
// в порядке создания (по возрастанию ID).
func (r *BookingRepository) ListByCity(city string) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.Select(&bookings, "SELECT * FROM bookings WHERE city=? ORDER BY id", city)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований: %w", err)
	}
	return bookings, nil
}

// Update перезаписывает данные клиента и даты по ID. Название отеля и город
// после создания не меняются. Несуществующий ID — no-op.
func (r *BookingRepository) Update(id int, customerName, customerAddress, startDate, endDate string) error {
	_, err := r.db.Exec(
		"UPDATE bookings SET customer_name=?, customer_address=?, start_date=?, end_date=? WHERE id=?",
		customerName, customerAddress, startDate, endDate, id,
	)
	if err != nil {
		return fmt.Errorf("не удалось обновить бронирование: %w", err)
	}
	return nil
}

// Delete удаляет бронирование по ID. Несуществующий ID — no-op.
func (r *BookingRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить бронирование: %w", err)
	}
	return nil
}
