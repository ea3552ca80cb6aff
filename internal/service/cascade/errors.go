package cascade

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("cascade: service not found in catalog")

	// ErrPhotographerNotFound возвращается, когда фотографа нет в каталоге
	ErrPhotographerNotFound = errors.New("cascade: photographer not found in catalog")

	// ErrPhotographerNotAvailable возвращается, когда фотограф неактивен
	// или не выполняет выбранную услугу
	// Список фотографов отфильтрован на границе ввода, поэтому это
	// некорректный переход, а не восстанавливаемое состояние
	ErrPhotographerNotAvailable = errors.New("cascade: photographer does not offer the selected service")

	// ErrUpstreamNotSelected возвращается при попытке выбрать нижестоящее
	// поле, когда вышестоящие еще не выбраны
	ErrUpstreamNotSelected = errors.New("cascade: upstream fields are not selected")

	// ErrDateNotAvailable возвращается при выборе даты вне загруженного
	// набора доступных дат
	ErrDateNotAvailable = errors.New("cascade: date is not available")

	// ErrTimeNotAvailable возвращается при выборе времени вне загруженного
	// набора доступных слотов
	ErrTimeNotAvailable = errors.New("cascade: time slot is not available")

	// ErrAdditionalServiceNotFound возвращается, когда дополнительной
	// услуги нет в каталоге
	ErrAdditionalServiceNotFound = errors.New("cascade: additional service not found in catalog")

	// ErrUnknownGuestField возвращается при неизвестном имени гостевого поля
	ErrUnknownGuestField = errors.New("cascade: unknown guest field")
)
