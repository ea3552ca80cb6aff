package studioservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("studioservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("studioservice client: invalid response")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("studioservice client: booking not found")
)

// RejectionError отказ студийного сервиса с человекочитаемой причиной
// Detail берется из структурированного поля detail тела ошибки,
// при его отсутствии - сырой текст ответа
type RejectionError struct {
	StatusCode int
	Detail     string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("studioservice client: request rejected (status %d): %s", e.StatusCode, e.Detail)
}
