package studioservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик исходящих запросов
// Может быть nil - тогда метрики не пишутся
type MetricsRecorder interface {
	ObserveUpstream(operation, outcome string, seconds float64)
}

// Client клиент для работы со студийным сервисом
// Объединяет доступность (available_dates/available_slots), каталог
// и операции над бронированиями
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента студийного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveUpstream(operation, outcome, time.Since(start).Seconds())
}

// doGet выполняет GET запрос и декодирует ответ в dst
func (c *Client) doGet(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.rejectionFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// rejectionFromResponse строит ошибку из неуспешного ответа сервиса
// Предпочитаем структурированное поле detail, иначе сырой текст тела
func (c *Client) rejectionFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return ErrBookingNotFound
	}

	var errResp ErrorResponse
	detail := ""
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		detail = errResp.Detail
	} else {
		detail = string(body)
	}

	return &RejectionError{
		StatusCode: resp.StatusCode,
		Detail:     detail,
	}
}

// GetAvailableDates получает список доступных дат для пары фотограф+услуга
// Токены дат opaque и отдаются сервису обратно без изменений
func (c *Client) GetAvailableDates(ctx context.Context, photographerID, serviceID domain.ID) ([]string, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("photographer", strconv.FormatInt(int64(photographerID), 10))
	q.Set("service", strconv.FormatInt(int64(serviceID), 10))
	rawURL := fmt.Sprintf("%s/api/bookings/available_dates/?%s", c.baseURL, q.Encode())

	var out AvailableDatesResponse
	err := c.doGet(ctx, rawURL, &out)
	c.observe("available_dates", start, err)
	if err != nil {
		return nil, err
	}

	return out.AvailableDates, nil
}

// GetAvailableSlots получает список доступных слотов на дату
func (c *Client) GetAvailableSlots(ctx context.Context, photographerID, serviceID domain.ID, date string) ([]string, error) {
	start := time.Now()

	q := url.Values{}
	q.Set("photographer", strconv.FormatInt(int64(photographerID), 10))
	q.Set("service", strconv.FormatInt(int64(serviceID), 10))
	q.Set("date", date)
	rawURL := fmt.Sprintf("%s/api/bookings/available_slots/?%s", c.baseURL, q.Encode())

	var out AvailableSlotsResponse
	err := c.doGet(ctx, rawURL, &out)
	c.observe("available_slots", start, err)
	if err != nil {
		return nil, err
	}

	return out.Slots, nil
}

// GetServices получает каталог услуг
func (c *Client) GetServices(ctx context.Context) ([]domain.Service, error) {
	start := time.Now()

	var models []ServiceModel
	err := c.doGet(ctx, c.baseURL+"/api/services/", &models)
	c.observe("services", start, err)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// GetPhotographers получает каталог фотографов
func (c *Client) GetPhotographers(ctx context.Context) ([]domain.Photographer, error) {
	start := time.Now()

	var models []PhotographerModel
	err := c.doGet(ctx, c.baseURL+"/api/photographers/", &models)
	c.observe("photographers", start, err)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Photographer, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// GetAdditionalServices получает каталог дополнительных услуг
func (c *Client) GetAdditionalServices(ctx context.Context) ([]domain.AdditionalService, error) {
	start := time.Now()

	var models []AdditionalServiceModel
	err := c.doGet(ctx, c.baseURL+"/api/additional-services/", &models)
	c.observe("additional_services", start, err)
	if err != nil {
		return nil, err
	}

	out := make([]domain.AdditionalService, 0, len(models))
	for i := range models {
		out = append(out, models[i].ToDomain())
	}
	return out, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id domain.ID) (*domain.BookingRecord, error) {
	start := time.Now()

	var model BookingModel
	rawURL := fmt.Sprintf("%s/api/bookings/%d/", c.baseURL, id)
	err := c.doGet(ctx, rawURL, &model)
	c.observe("get_booking", start, err)
	if err != nil {
		return nil, err
	}

	return model.ToDomain(), nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.BookingRecord, error) {
	start := time.Now()
	rec, err := c.doMutation(ctx, http.MethodPost, c.baseURL+"/api/bookings/", req, http.StatusCreated)
	c.observe("create_booking", start, err)
	return rec, err
}

// UpdateBooking частично обновляет бронирование
func (c *Client) UpdateBooking(ctx context.Context, id domain.ID, req *UpdateBookingRequest) (*domain.BookingRecord, error) {
	start := time.Now()
	rawURL := fmt.Sprintf("%s/api/bookings/%d/", c.baseURL, id)
	rec, err := c.doMutation(ctx, http.MethodPatch, rawURL, req, http.StatusOK)
	c.observe("update_booking", start, err)
	return rec, err
}

// UpdateBookingStatus меняет только статус бронирования
func (c *Client) UpdateBookingStatus(ctx context.Context, id domain.ID, status string) (*domain.BookingRecord, error) {
	start := time.Now()
	rawURL := fmt.Sprintf("%s/api/bookings/%d/", c.baseURL, id)
	rec, err := c.doMutation(ctx, http.MethodPatch, rawURL, &StatusUpdateRequest{Status: status}, http.StatusOK)
	c.observe("update_booking_status", start, err)
	return rec, err
}

// doMutation выполняет POST/PATCH с JSON телом и декодирует бронирование
func (c *Client) doMutation(ctx context.Context, method, rawURL string, payload interface{}, wantStatus int) (*domain.BookingRecord, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Сервис может отвечать 200 на create и 201 на patch в зависимости от
	// версии, принимаем оба успешных статуса
	if resp.StatusCode != wantStatus && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.rejectionFromResponse(resp)
	}

	var model BookingModel
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}

	return model.ToDomain(), nil
}
