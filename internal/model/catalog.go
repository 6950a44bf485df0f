package model

// City представляет город справочного каталога вместе с его
// достопримечательностями, событиями и информацией о транспорте.
// Каталог статичен и поставляется вместе с приложением.
type City struct {
	Slug      string    `yaml:"slug"`
	Name      string    `yaml:"name"`
	Country   string    `yaml:"country"`
	Places    []Place   `yaml:"places"`
	Events    []Event   `yaml:"events"`
	Transport Transport `yaml:"transport"`
}

// Place представляет достопримечательность города.
type Place struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lon         float64 `yaml:"lon"`
	Description string  `yaml:"desc"`
}

// Event представляет событие, проходящее в городе.
type Event struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Venue string `yaml:"venue"`
}

// Transport описывает, как перемещаться по городу.
type Transport struct {
	Modes       []string `yaml:"modes"`
	Description string   `yaml:"desc"`
	Link        string   `yaml:"link"`
}
