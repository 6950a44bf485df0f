package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cityhop/internal/config"
	"cityhop/internal/logger"
	"cityhop/internal/model"
	"cityhop/internal/repository"
	"cityhop/internal/service"
	"cityhop/internal/slug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// bookingDraft — состояние пошагового диалога бронирования отеля.
type bookingDraft struct {
	city            string
	step            int // 0 — имя, 1 — адрес, 2 — дата заезда, 3 — дата выезда
	customerName    string
	customerAddress string
	startDate       string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Ошибка конфигурации: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.PostgresDSN())
	if err != nil {
		logrus.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	localDB, err := sqlx.Connect("sqlite", cfg.SQLitePath)
	if err != nil {
		logrus.Fatalf("Не удалось открыть локальную базу бронирований: %v", err)
	}

	// Инициализация репозиториев и сервисов
	userRepo := repository.NewUserRepository(db)
	savedPlaceRepo := repository.NewSavedPlaceRepository(db)
	bookingRepo := repository.NewBookingRepository(localDB)
	if err := bookingRepo.InitSchema(); err != nil {
		logrus.Fatalf("Не удалось инициализировать таблицу бронирований: %v", err)
	}
	catalogRepo, err := repository.NewCatalogRepository()
	if err != nil {
		logrus.Fatalf("Не удалось загрузить каталог городов: %v", err)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
	catalogService := service.NewCatalogService(catalogRepo)
	savedPlaceService := service.NewSavedPlaceService(savedPlaceRepo)
	bookingService := service.NewBookingService(bookingRepo)
	sessions := service.NewSessionManager()

	unsubscribe := sessions.OnChange(func(chatID int64, s *model.Session) {
		if s != nil {
			logrus.Infof("Чат %d: вход %s", chatID, s.Email)
		} else {
			logrus.Infof("Чат %d: выход", chatID)
		}
	})
	defer unsubscribe()

	// Инициализация Telegram Bot API
	if cfg.BotToken == "" {
		logrus.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logrus.Fatalf("Ошибка инициализации бота: %v", err)
	}
	logrus.Infof("Запущен бот %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	// Состояние диалогов
	pendingBooking := make(map[int64]*bookingDraft) // chatID -> черновик брони

	for update := range updates {
		// --- CallbackQuery (inline buttons) ---
		if cq := update.CallbackQuery; cq != nil {
			bot.Request(tgbotapi.NewCallback(cq.ID, ""))

			chatID := cq.Message.Chat.ID
			data := cq.Data

			switch {
			// Карточка города со списком мест
			case strings.HasPrefix(data, "CITY_"):
				citySlug := strings.TrimPrefix(data, "CITY_")
				city, ok := catalogService.GetCity(citySlug)
				if !ok {
					bot.Send(tgbotapi.NewMessage(chatID, "Город не найден."))
					continue
				}
				rows := [][]tgbotapi.InlineKeyboardButton{}
				for i, p := range city.Places {
					btn := tgbotapi.NewInlineKeyboardButtonData(p.Name, fmt.Sprintf("PL_%s_%d", citySlug, i))
					rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
				}
				msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("*%s*, %s\nВыберите место:", city.Name, city.Country))
				msg.ParseMode = "Markdown"
				msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
				bot.Send(msg)

			// Карточка места: описание, карта, кнопка сохранения
			case strings.HasPrefix(data, "PL_"):
				city, place, ok := resolvePlace(catalogService, strings.TrimPrefix(data, "PL_"))
				if !ok {
					bot.Send(tgbotapi.NewMessage(chatID, "Место не найдено."))
					continue
				}
				text := fmt.Sprintf(
					"*%s*\n%s\n\n[Открыть в картах](https://maps.google.com/?q=%f,%f)",
					place.Name, place.Description, place.Lat, place.Lon,
				)
				msg := tgbotapi.NewMessage(chatID, text)
				msg.ParseMode = "Markdown"

				label := "⭐ Сохранить"
				if sess := sessions.Current(chatID); sess != nil {
					key := slug.PlaceKey(city.Name, place.Name)
					if state, err := savedPlaceService.CheckSaved(sess.UserID, key); err == nil && state.Saved {
						label = "✖ Убрать из сохраненного"
					}
				}
				btn := tgbotapi.NewInlineKeyboardButtonData(label, "SAVE_"+strings.TrimPrefix(data, "PL_"))
				msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btn))
				bot.Send(msg)

			// Переключение «сохранено»
			case strings.HasPrefix(data, "SAVE_"):
				city, place, ok := resolvePlace(catalogService, strings.TrimPrefix(data, "SAVE_"))
				if !ok {
					bot.Send(tgbotapi.NewMessage(chatID, "Место не найдено."))
					continue
				}
				sess := sessions.Current(chatID)
				userID := ""
				if sess != nil {
					userID = sess.UserID
				}
				key := slug.PlaceKey(city.Name, place.Name)
				state, err := savedPlaceService.CheckSaved(userID, key)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Хранилище недоступно, попробуйте позже."))
					continue
				}
				snapshot := model.SavedPlace{
					PlaceKey:    key,
					Name:        place.Name,
					City:        city.Name,
					Country:     city.Country,
					Lat:         place.Lat,
					Lon:         place.Lon,
					Description: place.Description,
				}
				newState, err := savedPlaceService.Toggle(userID, state, snapshot)
				switch {
				case errors.Is(err, service.ErrAuthRequired):
					bot.Send(tgbotapi.NewMessage(chatID, "Сначала войдите: /login email пароль"))
				case errors.Is(err, service.ErrToggleInProgress):
					bot.Send(tgbotapi.NewMessage(chatID, "Подождите, операция уже выполняется."))
				case err != nil:
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось обновить сохраненное."))
				case newState.Saved:
					bot.Send(tgbotapi.NewMessage(chatID, "Добавлено в сохраненное."))
				default:
					bot.Send(tgbotapi.NewMessage(chatID, "Убрано из сохраненного."))
				}

			// Удаление бронирования
			case strings.HasPrefix(data, "DELB_"):
				id, _ := strconv.Atoi(strings.TrimPrefix(data, "DELB_"))
				if err := bookingService.Delete(id); err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось удалить бронирование."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Бронирование удалено."))
				}
			}

			continue
		}

		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID

		// Команды
		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				bot.Send(tgbotapi.NewMessage(chatID,
					"Привет! Я CityHop.\n/cities — каталог городов\n/login email пароль — вход\n/saved — сохраненные места\n/book город — бронь отеля\n/bookings город — мои брони"))

			case "cities":
				cities := catalogService.ListCities()
				rows := [][]tgbotapi.InlineKeyboardButton{}
				for _, c := range cities {
					btn := tgbotapi.NewInlineKeyboardButtonData(
						fmt.Sprintf("%s (%s)", c.Name, c.Country), "CITY_"+c.Slug)
					rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
				}
				reply := tgbotapi.NewMessage(chatID, "Куда едем?")
				reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
				bot.Send(reply)

			case "login":
				parts := strings.Fields(msg.CommandArguments())
				if len(parts) != 2 {
					bot.Send(tgbotapi.NewMessage(chatID, "Используйте: /login email пароль"))
					continue
				}
				user, _, err := authService.Login(parts[0], parts[1])
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Неверный email или пароль."))
					continue
				}
				sessions.Set(chatID, &model.Session{UserID: user.ID, Email: user.Email})
				bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Здравствуйте, %s!", user.Email)))

			case "logout":
				sessions.Clear(chatID)
				delete(pendingBooking, chatID)
				bot.Send(tgbotapi.NewMessage(chatID, "Вы вышли из аккаунта."))

			case "saved":
				sess := sessions.Current(chatID)
				if sess == nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Сначала войдите: /login email пароль"))
					continue
				}
				places, err := savedPlaceService.ListSaved(sess.UserID)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось получить сохраненные места."))
					continue
				}
				if len(places) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Пока ничего не сохранено."))
					continue
				}
				var b strings.Builder
				b.WriteString("Сохраненные места:\n")
				for _, p := range places {
					fmt.Fprintf(&b, "• %s — %s, %s\n", p.Name, p.City, p.Country)
				}
				bot.Send(tgbotapi.NewMessage(chatID, b.String()))

			case "book":
				city := strings.TrimSpace(msg.CommandArguments())
				if city == "" {
					bot.Send(tgbotapi.NewMessage(chatID, "Используйте: /book <город>"))
					continue
				}
				pendingBooking[chatID] = &bookingDraft{city: city}
				bot.Send(tgbotapi.NewMessage(chatID, "Как вас зовут?"))

			case "bookings":
				city := strings.TrimSpace(msg.CommandArguments())
				if city == "" {
					bot.Send(tgbotapi.NewMessage(chatID, "Используйте: /bookings <город>"))
					continue
				}
				bookings, err := bookingService.ListByCity(city)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось получить бронирования."))
					continue
				}
				if len(bookings) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Бронирований в этом городе нет."))
					continue
				}
				for _, bk := range bookings {
					text := fmt.Sprintf("#%d %s\n%s, %s\n%s — %s",
						bk.ID, bk.HotelName, bk.CustomerName, bk.CustomerAddress, bk.StartDate, bk.EndDate)
					card := tgbotapi.NewMessage(chatID, text)
					btn := tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить", fmt.Sprintf("DELB_%d", bk.ID))
					card.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btn))
					bot.Send(card)
				}
			}
			continue
		}

		// Пошаговый диалог бронирования
		if draft, ok := pendingBooking[chatID]; ok {
			text := strings.TrimSpace(msg.Text)
			switch draft.step {
			case 0:
				draft.customerName = text
				draft.step++
				bot.Send(tgbotapi.NewMessage(chatID, "Ваш адрес?"))
			case 1:
				draft.customerAddress = text
				draft.step++
				bot.Send(tgbotapi.NewMessage(chatID, "Дата заезда?"))
			case 2:
				draft.startDate = text
				draft.step++
				bot.Send(tgbotapi.NewMessage(chatID, "Дата выезда?"))
			case 3:
				delete(pendingBooking, chatID)
				id, err := bookingService.Create("", draft.city, draft.customerName, draft.customerAddress, draft.startDate, text)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось создать бронирование."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Бронь #%d создана. Смотрите /bookings %s", id, draft.city)))
				}
			}
			continue
		}
	}
}

// resolvePlace разбирает ссылку вида "<slug города>_<номер места>".
func resolvePlace(catalog *service.CatalogService, ref string) (*model.City, *model.Place, bool) {
	sep := strings.LastIndex(ref, "_")
	if sep < 0 {
		return nil, nil, false
	}
	idx, err := strconv.Atoi(ref[sep+1:])
	if err != nil {
		return nil, nil, false
	}
	city, ok := catalog.GetCity(ref[:sep])
	if !ok || idx < 0 || idx >= len(city.Places) {
		return nil, nil, false
	}
	return city, &city.Places[idx], true
}
