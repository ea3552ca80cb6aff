package flow

import (
	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
)

// CreateSessionRequest параметры открытия сессии подбора
type CreateSessionRequest struct {
	Mode      domain.FlowMode
	BookingID *domain.ID // обязателен в режиме редактирования

	UserID        *domain.ID
	Authenticated bool
	Discount      float64
}

// NullableID устанавливаемое значение идентификатора
// Отличает "снять выбор" (Value == nil) от "поле не передано"
// (указатель на NullableID == nil в SelectionChanges)
type NullableID struct {
	Value *domain.ID
}

// NullableString устанавливаемое строковое значение
type NullableString struct {
	Value *string
}

// SelectionChanges частичное обновление выбора
// Непереданные поля не трогаются; переданные применяются в порядке
// зависимости сверху вниз: услуга, фотограф, дата, время
type SelectionChanges struct {
	ServiceID      *NullableID
	PhotographerID *NullableID
	Date           *NullableString
	StartTime      *NullableString

	// Полная замена набора дополнительных услуг
	AdditionalServiceIDs *[]domain.ID
	// Переключение одной дополнительной услуги
	ToggleAdditionalServiceID *domain.ID

	// Гостевые поля: имя поля -> значение
	GuestFields map[string]string
}

// SessionView снимок сессии для отдачи наружу
type SessionView struct {
	ID            string
	Mode          domain.FlowMode
	BookingID     *domain.ID
	Authenticated bool

	Snapshot cascade.Snapshot
	Catalog  *domain.Catalog
}

// SubmitResult результат отправки бронирования в рамках сессии
type SubmitResult struct {
	Booking *domain.BookingRecord
	View    SessionView
}
