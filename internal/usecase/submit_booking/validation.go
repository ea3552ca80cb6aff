package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

// Сообщения локальной валидации, показываются пользователю у полей
const (
	MsgServiceRequired      = "Оберіть послугу"
	MsgPhotographerRequired = "Оберіть фотографа"
	MsgDateRequired         = "Оберіть дату"
	MsgTimeRequired         = "Оберіть час"
	MsgDateInPast           = "Не можна бронювати в минулому"
	MsgFirstNameRequired    = "Введіть ім'я"
	MsgLastNameRequired     = "Введіть прізвище"
	MsgEmailRequired        = "Введіть email"
	MsgEmailInvalid         = "Некоректний email"
)

var emailValidator = validator.New()

// validateRequest проверяет структурную корректность запроса
func validateRequest(req *Request) error {
	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: unknown flow mode %q", ErrInvalidInput, req.Mode)
	}
	if req.Mode == domain.ModeEdit && req.BookingID == nil {
		return fmt.Errorf("%w: bookingID is required in edit mode", ErrInvalidInput)
	}
	return nil
}

// validateSelection выполняет локальную валидацию выбора перед отправкой
// Возвращает сообщения по полям; пустая map означает, что выбор пригоден
// к отправке. Сетевых вызовов до прохождения валидации не делается
func validateSelection(sel *domain.Selection, authenticated bool, now time.Time) map[string]string {
	fields := make(map[string]string)

	if sel.ServiceID == nil {
		fields[domain.FieldService] = MsgServiceRequired
	}
	if sel.PhotographerID == nil {
		fields[domain.FieldPhotographer] = MsgPhotographerRequired
	}
	if sel.Date == nil {
		fields[domain.FieldDate] = MsgDateRequired
	} else if dateInPast(*sel.Date, now) {
		fields[domain.FieldDate] = MsgDateInPast
	}
	if sel.StartTime == nil {
		fields[domain.FieldStartTime] = MsgTimeRequired
	}

	// Гостевые поля обязательны только для неавторизованной отправки
	if !authenticated {
		if strings.TrimSpace(sel.GuestFirstName) == "" {
			fields[domain.FieldGuestFirstName] = MsgFirstNameRequired
		}
		if strings.TrimSpace(sel.GuestLastName) == "" {
			fields[domain.FieldGuestLastName] = MsgLastNameRequired
		}
		email := strings.TrimSpace(sel.GuestEmail)
		if email == "" {
			fields[domain.FieldGuestEmail] = MsgEmailRequired
		} else if emailValidator.Var(email, "email") != nil {
			fields[domain.FieldGuestEmail] = MsgEmailInvalid
		}
	}

	return fields
}

// dateInPast проверяет, что дата раньше сегодняшнего дня
// Нераспознаваемый токен даты прошлым не считается: его легальность
// подтвердил сервис доступности
func dateInPast(date string, now time.Time) bool {
	d, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}
