package studioservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}, nil), srv
}

func TestGetAvailableDates(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/available_dates/", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "10", req.URL.Query().Get("photographer"))
		assert.Equal(t, "1", req.URL.Query().Get("service"))
		_ = json.NewEncoder(w).Encode(AvailableDatesResponse{
			AvailableDates: []string{"2026-09-01", "2026-09-02"},
		})
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	dates, err := client.GetAvailableDates(context.Background(), 10, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01", "2026-09-02"}, dates)
}

func TestGetAvailableSlots(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/available_slots/", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2026-09-01", req.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode(AvailableSlotsResponse{Slots: []string{"10:00", "11:00"}})
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	slots, err := client.GetAvailableSlots(context.Background(), 10, 1, "2026-09-01")

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00"}, slots)
}

func TestGetServices_ParsesDecimalPrices(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/services/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]ServiceModel{
			{ID: 1, Name: "Фотосесія в студії", Price: "500.00", Duration: 60},
		})
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	services, err := client.GetServices(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, domain.ID(1), services[0].ID)
	assert.Equal(t, 500.0, services[0].Price)
}

func TestGetPhotographers_FlattensUserAndServices(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/photographers/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]PhotographerModel{
			{
				ID:       10,
				User:     PhotographerUser{FirstName: "Олена", LastName: "Кравець", IsActive: true},
				Services: []ServiceModel{{ID: 1}, {ID: 2}},
			},
		})
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	photographers, err := client.GetPhotographers(context.Background())

	require.NoError(t, err)
	require.Len(t, photographers, 1)
	assert.Equal(t, "Олена", photographers[0].FirstName)
	assert.True(t, photographers[0].IsActive)
	assert.Equal(t, []domain.ID{1, 2}, photographers[0].ServiceIDs)
}

func TestGetBooking(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}/", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "7", mux.Vars(req)["id"])
		_ = json.NewEncoder(w).Encode(BookingModel{
			ID:           7,
			ServiceObj:   &ServiceModel{ID: 1, Price: "500.00"},
			Photographer: &PhotographerModel{ID: 10},
			Date:         "2026-09-01",
			StartTime:    "10:00",
			Status:       domain.StatusPending,
			Price:        "600.00",
			AdditionalServicesData: []AdditionalServiceModel{
				{ID: 100, Price: "100.00"},
			},
		})
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	booking, err := client.GetBooking(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.ID(7), booking.ID)
	assert.Equal(t, domain.ID(1), booking.ServiceID)
	assert.Equal(t, domain.ID(10), booking.PhotographerID)
	assert.Equal(t, 600.0, booking.Price)
	assert.Equal(t, []domain.ID{100}, booking.AdditionalServiceIDs)
}

func TestGetBooking_NotFound(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	client, _ := newTestClient(t, r)

	_, err := client.GetBooking(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateBooking_SendsSnakeCasePayload(t *testing.T) {
	var received map[string]interface{}
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(BookingModel{ID: 42, Status: domain.StatusPending, Price: "500.00"})
	}).Methods(http.MethodPost)
	client, _ := newTestClient(t, r)

	guestEmail := "olena@example.com"
	booking, err := client.CreateBooking(context.Background(), &CreateBookingRequest{
		ServiceID:            1,
		PhotographerID:       10,
		Date:                 "2026-09-01",
		StartTime:            "10:00",
		AdditionalServiceIDs: []domain.ID{100},
		GuestEmail:           &guestEmail,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(42), booking.ID)

	assert.Equal(t, float64(1), received["service_id"])
	assert.Equal(t, float64(10), received["photographer_id"])
	assert.Equal(t, "2026-09-01", received["date"])
	assert.Equal(t, "10:00", received["start_time"])
	assert.Equal(t, "olena@example.com", received["guest_email"])
	_, hasFirstName := received["guest_first_name"]
	assert.False(t, hasFirstName, "незаполненные гостевые поля не отправляются")
}

func TestUpdateBooking_AlwaysSendsAdditionalServiceIDs(t *testing.T) {
	var received map[string]interface{}
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}/", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(BookingModel{ID: 7, Status: domain.StatusPending, Price: "500.00"})
	}).Methods(http.MethodPatch)
	client, _ := newTestClient(t, r)

	_, err := client.UpdateBooking(context.Background(), 7, &UpdateBookingRequest{
		AdditionalServiceIDs: []domain.ID{},
	})

	require.NoError(t, err)

	ids, ok := received["additional_service_ids"]
	require.True(t, ok, "additional_service_ids должен отправляться даже пустым")
	assert.Empty(t, ids)
	_, hasService := received["service_id"]
	assert.False(t, hasService)
}

func TestUpdateBookingStatus_SendsOnlyStatus(t *testing.T) {
	var received map[string]interface{}
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}/", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, json.NewDecoder(req.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(BookingModel{ID: 7, Status: domain.StatusCancelledByUser, Price: "500.00"})
	}).Methods(http.MethodPatch)
	client, _ := newTestClient(t, r)

	booking, err := client.UpdateBookingStatus(context.Background(), 7, domain.StatusCancelledByUser)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, booking.Status)
	assert.Equal(t, map[string]interface{}{"status": domain.StatusCancelledByUser}, received)
}

func TestCreateBooking_RejectionUsesDetailField(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Цей слот вже зайнятий"})
	}).Methods(http.MethodPost)
	client, _ := newTestClient(t, r)

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusBadRequest, rejection.StatusCode)
	assert.Equal(t, "Цей слот вже зайнятий", rejection.Detail)
}

func TestCreateBooking_RejectionFallsBackToRawBody(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}).Methods(http.MethodPost)
	client, _ := newTestClient(t, r)

	_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "bad gateway", rejection.Detail)
}
