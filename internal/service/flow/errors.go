package flow

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("flow: session not found")

	// ErrBookingNotFound возвращается, когда бронирование для режима
	// редактирования не найдено
	ErrBookingNotFound = errors.New("flow: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("flow: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("flow: internal error")
)
