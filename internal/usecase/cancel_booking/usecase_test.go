package cancel_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	studioClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeStudioClient struct {
	bookingID domain.ID
	status    string
	calls     int

	booking *domain.BookingRecord
	err     error
}

func (f *fakeStudioClient) UpdateBookingStatus(_ context.Context, bookingID domain.ID, status string) (*domain.BookingRecord, error) {
	f.calls++
	f.bookingID = bookingID
	f.status = status
	return f.booking, f.err
}

func TestExecute_CancelSetsUserCancelledStatus(t *testing.T) {
	client := &fakeStudioClient{
		booking: &domain.BookingRecord{ID: 7, Status: domain.StatusCancelledByUser},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 7})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(7), client.bookingID)
	assert.Equal(t, domain.StatusCancelledByUser, client.status)
	assert.Equal(t, domain.StatusCancelledByUser, resp.Booking.Status)
}

func TestExecute_InvalidBookingID(t *testing.T) {
	client := &fakeStudioClient{}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, client.calls)
}

func TestExecute_BookingNotFound(t *testing.T) {
	client := &fakeStudioClient{err: studioClient.ErrBookingNotFound}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 999})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	client := &fakeStudioClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7})

	assert.ErrorIs(t, err, ErrInternal)
}
