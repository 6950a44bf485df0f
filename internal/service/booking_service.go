package service

import (
	"fmt"
	"strings"

	"cityhop/internal/model"
	"cityhop/internal/repository"
	"cityhop/internal/slug"
)

// DefaultHotelName подставляется, если при создании брони отель не указан.
const DefaultHotelName = "CityHop Stay Hotel"

// BookingService содержит бизнес-логику, связанную с бронированиями отелей.
// Канонической формой поля city выбрана slug-форма: и при записи, и при
// фильтрации город проходит через slug.Slug, поэтому «Tokyo» и «tokyo»
// попадают в одну корзину.
type BookingService struct {
	bookingRepo *repository.BookingRepository
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingRepo *repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

// Create создает бронирование и возвращает присвоенный ID. Пустое название
// отеля заменяется фиксированным; остальные поля сохраняются без проверки.
func (s *BookingService) Create(hotelName, city, customerName, customerAddress, startDate, endDate string) (int, error) {
	if strings.TrimSpace(hotelName) == "" {
		hotelName = DefaultHotelName
	}
	booking := &model.Booking{
		HotelName:       hotelName,
		City:            slug.Slug(city),
		CustomerName:    customerName,
		CustomerAddress: customerAddress,
		StartDate:       startDate,
		EndDate:         endDate,
	}
	id, err := s.bookingRepo.Create(booking)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return id, nil
}

// ListByCity возвращает бронирования города в порядке создания.
func (s *BookingService) ListByCity(city string) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.ListByCity(slug.Slug(city))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return bookings, nil
}

// Update перезаписывает данные клиента и даты брони. Отель и город неизменны.
func (s *BookingService) Update(id int, customerName, customerAddress, startDate, endDate string) error {
	if err := s.bookingRepo.Update(id, customerName, customerAddress, startDate, endDate); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Delete удаляет бронирование по ID.
func (s *BookingService) Delete(id int) error {
	if err := s.bookingRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
