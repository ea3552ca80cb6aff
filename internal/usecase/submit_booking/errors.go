package submit_booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation возвращается, когда выбор не прошел локальную валидацию
	// Детали по полям доступны через errors.As к *FieldValidationError
	ErrValidation = errors.New("submit_booking: selection validation failed")

	// ErrBookingNotFound возвращается, когда редактируемое бронирование
	// не найдено на стороне студийного сервиса
	ErrBookingNotFound = errors.New("submit_booking: booking not found")

	// ErrRejected возвращается, когда студийный сервис отклонил отправку
	// (например, слот занят между загрузкой опций и отправкой)
	ErrRejected = errors.New("submit_booking: submission rejected by studio service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// FieldValidationError ошибка локальной валидации с сообщениями по полям
// Выбор при этом сохраняется нетронутым, сообщения очищаются правкой полей
type FieldValidationError struct {
	Fields map[string]string
}

func (e *FieldValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: fields [%s]", ErrValidation, strings.Join(fields, ", "))
}

func (e *FieldValidationError) Unwrap() error {
	return ErrValidation
}

// RejectionError ошибка отклонения отправки студийным сервисом
// Detail - сообщение сервиса, пригодное для показа пользователю
type RejectionError struct {
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrRejected, e.Detail)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
