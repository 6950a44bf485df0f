package service

import "errors"

// Виды ошибок, различимых вызывающей стороной через errors.Is.
// Обе не фатальны: состояние в памяти остается таким же, как до вызова.
var (
	// ErrAuthRequired — операция требует активной сессии пользователя.
	ErrAuthRequired = errors.New("требуется вход в систему")

	// ErrStorageUnavailable — обращение к удаленному или локальному
	// хранилищу завершилось ошибкой транспорта/движка.
	ErrStorageUnavailable = errors.New("хранилище недоступно")

	// ErrToggleInProgress — переключение для этого места уже выполняется.
	ErrToggleInProgress = errors.New("операция с этим местом уже выполняется")

	// ErrInvalidCredentials — неверная пара email/пароль.
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)
