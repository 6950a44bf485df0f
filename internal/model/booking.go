package model

// Booking представляет запись о бронировании отеля в локальной базе данных.
// Все поля, кроме ID, — свободный текст: валидация дат и адресов не выполняется.
type Booking struct {
	ID              int    `db:"id"`
	HotelName       string `db:"hotel_name"`
	City            string `db:"city"` // идентификатор города в slug-форме
	CustomerName    string `db:"customer_name"`
	CustomerAddress string `db:"customer_address"`
	StartDate       string `db:"start_date"`
	EndDate         string `db:"end_date"`
}
