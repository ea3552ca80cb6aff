package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	studioClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
)

// UseCase use case отмены бронирования
// Отмена - смена статуса на стороне студийного сервиса, запись остается
type UseCase struct {
	studioClient StudioServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(studioClient StudioServiceClient, logger Logger) *UseCase {
	return &UseCase{
		studioClient: studioClient,
		logger:       logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.studioClient.UpdateBookingStatus(ctx, req.BookingID, domain.StatusCancelledByUser)
	if err != nil {
		if errors.Is(err, studioClient.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled", booking.ID)
	return &Response{Booking: booking}, nil
}
