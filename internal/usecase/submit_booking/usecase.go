package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	studioClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
	"github.com/m04kA/SMC-BookingFlowService/pkg/ptr"
)

// UseCase use case отправки бронирования
// Единственная операция, меняющая состояние на стороне студийного сервиса:
// создание нового бронирования или обновление существующего
type UseCase struct {
	studioClient StudioServiceClient
	timeProvider TimeProvider
	logger       Logger
	metrics      MetricsRecorder
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(studioClient StudioServiceClient, logger Logger, metrics MetricsRecorder) *UseCase {
	return &UseCase{
		studioClient: studioClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      metrics,
	}
}

// Execute выполняет отправку бронирования
// Локальная валидация идет до единого сетевого вызова: при ошибке валидации
// возвращается *FieldValidationError и запрос к сервису не отправляется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: mode=%s, authenticated=%t", req.Mode, req.Authenticated)

	// 1. Структурная валидация запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: invalid request: %v", err)
		return nil, err
	}

	// 2. Локальная валидация выбора
	if fields := validateSelection(&req.Selection, req.Authenticated, uc.timeProvider.Now()); len(fields) > 0 {
		uc.logger.Warn("SubmitBooking: validation failed for %d fields", len(fields))
		uc.observe(req.Mode, "validation_error")
		return nil, &FieldValidationError{Fields: fields}
	}

	// 3. Отправляем в студийный сервис
	var (
		booking *domain.BookingRecord
		err     error
	)
	switch req.Mode {
	case domain.ModeCreate:
		booking, err = uc.createBooking(ctx, req)
	case domain.ModeEdit:
		booking, err = uc.updateBooking(ctx, req)
	}

	if err != nil {
		var rejection *studioClient.RejectionError
		switch {
		case errors.Is(err, studioClient.ErrBookingNotFound):
			uc.logger.Warn("SubmitBooking: booking id=%v not found", ptr.Deref(req.BookingID))
			uc.observe(req.Mode, "not_found")
			return nil, ErrBookingNotFound
		case errors.As(err, &rejection):
			// Отказ сервиса (занятый слот и т.п.): выбор остается нетронутым,
			// пользователь правит его и отправляет снова
			uc.logger.Warn("SubmitBooking: rejected by studio service: %s", rejection.Detail)
			uc.observe(req.Mode, "rejected")
			return nil, &RejectionError{Detail: rejection.Detail}
		default:
			uc.logger.Error("SubmitBooking: failed to submit booking: %v", err)
			uc.observe(req.Mode, "error")
			return nil, fmt.Errorf("%w: failed to submit booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SubmitBooking: booking id=%d submitted (mode=%s, status=%s)",
		booking.ID, req.Mode, booking.Status)
	uc.observe(req.Mode, "success")

	return &Response{Booking: booking}, nil
}

// createBooking собирает payload создания и отправляет его
func (uc *UseCase) createBooking(ctx context.Context, req *Request) (*domain.BookingRecord, error) {
	payload := &studioClient.CreateBookingRequest{
		ServiceID:            *req.Selection.ServiceID,
		PhotographerID:       *req.Selection.PhotographerID,
		Date:                 *req.Selection.Date,
		StartTime:            *req.Selection.StartTime,
		AdditionalServiceIDs: req.Selection.AdditionalServiceIDs,
	}

	// Гостевые поля уходят только для неавторизованного пользователя
	if !req.Authenticated {
		payload.GuestFirstName = ptr.Ptr(req.Selection.GuestFirstName)
		payload.GuestLastName = ptr.Ptr(req.Selection.GuestLastName)
		payload.GuestEmail = ptr.Ptr(req.Selection.GuestEmail)
	}

	return uc.studioClient.CreateBooking(ctx, payload)
}

// updateBooking собирает payload частичного обновления и отправляет его
func (uc *UseCase) updateBooking(ctx context.Context, req *Request) (*domain.BookingRecord, error) {
	// AdditionalServiceIDs передается всегда, даже пустым:
	// иначе нельзя снять все дополнительные услуги
	ids := req.Selection.AdditionalServiceIDs
	if ids == nil {
		ids = []domain.ID{}
	}

	payload := &studioClient.UpdateBookingRequest{
		ServiceID:            req.Selection.ServiceID,
		PhotographerID:       req.Selection.PhotographerID,
		Date:                 req.Selection.Date,
		StartTime:            req.Selection.StartTime,
		AdditionalServiceIDs: ids,
	}

	return uc.studioClient.UpdateBooking(ctx, *req.BookingID, payload)
}

func (uc *UseCase) observe(mode domain.FlowMode, outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncSubmission(string(mode), outcome)
	}
}
