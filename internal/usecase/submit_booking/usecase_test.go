package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	studioClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
	"github.com/m04kA/SMC-BookingFlowService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fixedTimeProvider фиксированное время для детерминированных тестов
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// fakeStudioClient записывает вызовы и отдает подготовленные ответы
type fakeStudioClient struct {
	createCalls []*studioClient.CreateBookingRequest
	updateCalls []*studioClient.UpdateBookingRequest
	updateIDs   []domain.ID

	booking *domain.BookingRecord
	err     error
}

func (f *fakeStudioClient) CreateBooking(_ context.Context, req *studioClient.CreateBookingRequest) (*domain.BookingRecord, error) {
	f.createCalls = append(f.createCalls, req)
	return f.booking, f.err
}

func (f *fakeStudioClient) UpdateBooking(_ context.Context, bookingID domain.ID, req *studioClient.UpdateBookingRequest) (*domain.BookingRecord, error) {
	f.updateCalls = append(f.updateCalls, req)
	f.updateIDs = append(f.updateIDs, bookingID)
	return f.booking, f.err
}

func newTestUseCase(client *fakeStudioClient) *UseCase {
	uc := NewUseCase(client, nopLogger{}, nil)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	return uc
}

func completeSelection() domain.Selection {
	return domain.Selection{
		ServiceID:            ptr.Ptr(domain.ID(1)),
		PhotographerID:       ptr.Ptr(domain.ID(10)),
		Date:                 ptr.Ptr("2026-09-01"),
		StartTime:            ptr.Ptr("10:00"),
		AdditionalServiceIDs: []domain.ID{100},
	}
}

func TestExecute_Create_Authenticated(t *testing.T) {
	client := &fakeStudioClient{
		booking: &domain.BookingRecord{ID: 42, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     completeSelection(),
		Authenticated: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(42), resp.Booking.ID)

	require.Len(t, client.createCalls, 1)
	payload := client.createCalls[0]
	assert.Equal(t, domain.ID(1), payload.ServiceID)
	assert.Equal(t, domain.ID(10), payload.PhotographerID)
	assert.Equal(t, "2026-09-01", payload.Date)
	assert.Equal(t, "10:00", payload.StartTime)
	assert.Equal(t, []domain.ID{100}, payload.AdditionalServiceIDs)

	// Авторизованная отправка не несет гостевых полей
	assert.Nil(t, payload.GuestFirstName)
	assert.Nil(t, payload.GuestLastName)
	assert.Nil(t, payload.GuestEmail)
}

func TestExecute_Create_GuestFieldsSentForAnonymous(t *testing.T) {
	client := &fakeStudioClient{
		booking: &domain.BookingRecord{ID: 43, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client)

	sel := completeSelection()
	sel.GuestFirstName = "Олена"
	sel.GuestLastName = "Кравець"
	sel.GuestEmail = "olena@example.com"

	_, err := uc.Execute(context.Background(), &Request{
		Mode:      domain.ModeCreate,
		Selection: sel,
	})

	require.NoError(t, err)
	require.Len(t, client.createCalls, 1)
	payload := client.createCalls[0]
	assert.Equal(t, "Олена", *payload.GuestFirstName)
	assert.Equal(t, "Кравець", *payload.GuestLastName)
	assert.Equal(t, "olena@example.com", *payload.GuestEmail)
}

func TestExecute_ValidationFailure_NoNetworkCall(t *testing.T) {
	client := &fakeStudioClient{}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     domain.Selection{},
		Authenticated: true,
	})

	require.ErrorIs(t, err, ErrValidation)

	var fieldErr *FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, MsgServiceRequired, fieldErr.Fields[domain.FieldService])
	assert.Equal(t, MsgPhotographerRequired, fieldErr.Fields[domain.FieldPhotographer])
	assert.Equal(t, MsgDateRequired, fieldErr.Fields[domain.FieldDate])
	assert.Equal(t, MsgTimeRequired, fieldErr.Fields[domain.FieldStartTime])

	assert.Empty(t, client.createCalls, "валидация должна идти до сетевого вызова")
	assert.Empty(t, client.updateCalls)
}

func TestExecute_GuestValidation_Anonymous(t *testing.T) {
	client := &fakeStudioClient{}
	uc := newTestUseCase(client)

	sel := completeSelection()
	sel.GuestEmail = "not-an-email"

	_, err := uc.Execute(context.Background(), &Request{
		Mode:      domain.ModeCreate,
		Selection: sel,
	})

	var fieldErr *FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, MsgFirstNameRequired, fieldErr.Fields[domain.FieldGuestFirstName])
	assert.Equal(t, MsgLastNameRequired, fieldErr.Fields[domain.FieldGuestLastName])
	assert.Equal(t, MsgEmailInvalid, fieldErr.Fields[domain.FieldGuestEmail])
	assert.Empty(t, client.createCalls)
}

func TestExecute_DateInPast(t *testing.T) {
	client := &fakeStudioClient{}
	uc := newTestUseCase(client)

	sel := completeSelection()
	sel.Date = ptr.Ptr("2026-08-27")

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     sel,
		Authenticated: true,
	})

	var fieldErr *FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, MsgDateInPast, fieldErr.Fields[domain.FieldDate])
}

func TestExecute_TodayIsNotInPast(t *testing.T) {
	client := &fakeStudioClient{
		booking: &domain.BookingRecord{ID: 44, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client)

	sel := completeSelection()
	sel.Date = ptr.Ptr("2026-08-28")

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     sel,
		Authenticated: true,
	})

	assert.NoError(t, err)
}

func TestExecute_Edit_SendsPatchWithAdditionalServices(t *testing.T) {
	client := &fakeStudioClient{
		booking: &domain.BookingRecord{ID: 7, Status: domain.StatusPending},
	}
	uc := newTestUseCase(client)

	sel := completeSelection()
	sel.AdditionalServiceIDs = nil

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeEdit,
		BookingID:     ptr.Ptr(domain.ID(7)),
		Selection:     sel,
		Authenticated: true,
	})

	require.NoError(t, err)
	require.Len(t, client.updateCalls, 1)
	assert.Equal(t, domain.ID(7), client.updateIDs[0])

	payload := client.updateCalls[0]
	assert.Equal(t, domain.ID(1), *payload.ServiceID)
	// Пустой список дополнительных услуг отправляется явно,
	// иначе снять все услуги при редактировании невозможно
	require.NotNil(t, payload.AdditionalServiceIDs)
	assert.Empty(t, payload.AdditionalServiceIDs)
	assert.Nil(t, payload.Status)
}

func TestExecute_Edit_RequiresBookingID(t *testing.T) {
	client := &fakeStudioClient{}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeEdit,
		Selection:     completeSelection(),
		Authenticated: true,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Edit_BookingNotFound(t *testing.T) {
	client := &fakeStudioClient{err: studioClient.ErrBookingNotFound}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeEdit,
		BookingID:     ptr.Ptr(domain.ID(999)),
		Selection:     completeSelection(),
		Authenticated: true,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RejectionPreservesDetail(t *testing.T) {
	client := &fakeStudioClient{
		err: &studioClient.RejectionError{StatusCode: 400, Detail: "Цей слот вже зайнятий"},
	}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     completeSelection(),
		Authenticated: true,
	})

	require.ErrorIs(t, err, ErrRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Цей слот вже зайнятий", rejection.Detail)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	client := &fakeStudioClient{err: errors.New("connection refused")}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{
		Mode:          domain.ModeCreate,
		Selection:     completeSelection(),
		Authenticated: true,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
