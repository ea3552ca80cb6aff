package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/infra/sessions"
	studioClient "github.com/m04kA/SMC-BookingFlowService/internal/integrations/studioservice"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/guard"
	"github.com/m04kA/SMC-BookingFlowService/internal/usecase/submit_booking"
)

// Service сервис сессий подбора бронирования
// Открывает сессию со снимком каталога, применяет изменения выбора
// через каскадный контроллер и отправляет готовый выбор
type Service struct {
	client         StudioServiceClient
	store          SessionStore
	submitUC       SubmitUseCase
	logger         Logger
	cascadeMetrics cascade.MetricsRecorder
}

// NewService создает сервис сессий подбора
func NewService(
	client StudioServiceClient,
	store SessionStore,
	submitUC SubmitUseCase,
	logger Logger,
	cascadeMetrics cascade.MetricsRecorder,
) *Service {
	return &Service{
		client:         client,
		store:          store,
		submitUC:       submitUC,
		logger:         logger,
		cascadeMetrics: cascadeMetrics,
	}
}

// CreateSession открывает сессию подбора
// Каталог загружается один раз на сессию: цены и связи фотограф-услуги
// дальше читаются из снимка. В режиме редактирования выбор предзаполняется
// из существующего бронирования
func (s *Service) CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionView, error) {
	if !req.Mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown flow mode %q", ErrInvalidInput, req.Mode)
	}
	if req.Mode == domain.ModeEdit && req.BookingID == nil {
		return nil, fmt.Errorf("%w: bookingID is required in edit mode", ErrInvalidInput)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	controller := cascade.NewController(
		catalog,
		s.client,
		guard.New(),
		cascade.Params{Authenticated: req.Authenticated, Discount: req.Discount},
		s.logger,
		s.cascadeMetrics,
	)

	session := &sessions.Session{
		ID:            sessions.NewSessionID(),
		Controller:    controller,
		Catalog:       catalog,
		Mode:          req.Mode,
		BookingID:     req.BookingID,
		UserID:        req.UserID,
		Authenticated: req.Authenticated,
		Discount:      req.Discount,
	}

	if req.Mode == domain.ModeEdit {
		booking, err := s.client.GetBooking(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, studioClient.ErrBookingNotFound) {
				s.logger.Warn("flow: booking id=%d not found for edit session", *req.BookingID)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("flow: failed to load booking id=%d: %v", *req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}
		controller.Prepopulate(selectionFromBooking(booking))
	}

	s.store.Put(session)
	s.logger.Info("flow: session %s created (mode=%s)", session.ID, session.Mode)

	return sessionView(session), nil
}

// GetSession возвращает снимок сессии
func (s *Service) GetSession(id string) (*SessionView, error) {
	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}
	return sessionView(session), nil
}

// UpdateSelection применяет частичное изменение выбора
// Переданные поля применяются в порядке зависимости сверху вниз,
// чтобы сбросы нижестоящих полей не перетирали новые значения
func (s *Service) UpdateSelection(id string, changes *SelectionChanges) (*SessionView, error) {
	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}
	c := session.Controller

	if changes.ServiceID != nil {
		if err := c.SetService(changes.ServiceID.Value); err != nil {
			return nil, err
		}
	}
	if changes.PhotographerID != nil {
		if err := c.SetPhotographer(changes.PhotographerID.Value); err != nil {
			return nil, err
		}
	}
	if changes.Date != nil {
		if err := c.SetDate(changes.Date.Value); err != nil {
			return nil, err
		}
	}
	if changes.StartTime != nil {
		if err := c.SetTime(changes.StartTime.Value); err != nil {
			return nil, err
		}
	}
	if changes.AdditionalServiceIDs != nil {
		if err := c.SetAdditionalServices(*changes.AdditionalServiceIDs); err != nil {
			return nil, err
		}
	}
	if changes.ToggleAdditionalServiceID != nil {
		if err := c.ToggleAdditionalService(*changes.ToggleAdditionalServiceID); err != nil {
			return nil, err
		}
	}
	for field, value := range changes.GuestFields {
		if err := c.SetGuestField(field, value); err != nil {
			return nil, err
		}
	}

	return sessionView(session), nil
}

// Submit отправляет текущий выбор сессии в студийный сервис
// Ошибки локальной валидации записываются в состояние сессии по полям,
// выбор при любой неудаче остается нетронутым
func (s *Service) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}

	resp, err := s.submitUC.Execute(ctx, &submit_booking.Request{
		Mode:          session.Mode,
		BookingID:     session.BookingID,
		Selection:     session.Controller.Selection(),
		Authenticated: session.Authenticated,
		UserID:        session.UserID,
	})
	if err != nil {
		var fieldErr *submit_booking.FieldValidationError
		if errors.As(err, &fieldErr) {
			session.Controller.ApplyFieldErrors(fieldErr.Fields)
		}
		return nil, err
	}

	// Успешное создание возвращает сессию к пустой форме,
	// после редактирования выбор остается на экране
	if session.Mode == domain.ModeCreate {
		session.Controller.ClearSelection()
	}

	return &SubmitResult{
		Booking: resp.Booking,
		View:    *sessionView(session),
	}, nil
}

// CloseSession закрывает сессию
func (s *Service) CloseSession(id string) {
	s.store.Delete(id)
}

func (s *Service) getSession(id string) (*sessions.Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}
	return session, nil
}

// loadCatalog загружает снимок каталога студии
func (s *Service) loadCatalog(ctx context.Context) (*domain.Catalog, error) {
	services, err := s.client.GetServices(ctx)
	if err != nil {
		s.logger.Error("flow: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	photographers, err := s.client.GetPhotographers(ctx)
	if err != nil {
		s.logger.Error("flow: failed to load photographers: %v", err)
		return nil, fmt.Errorf("%w: failed to load photographers: %v", ErrInternal, err)
	}

	additional, err := s.client.GetAdditionalServices(ctx)
	if err != nil {
		s.logger.Error("flow: failed to load additional services: %v", err)
		return nil, fmt.Errorf("%w: failed to load additional services: %v", ErrInternal, err)
	}

	return &domain.Catalog{
		Services:           services,
		Photographers:      photographers,
		AdditionalServices: additional,
	}, nil
}

// selectionFromBooking строит начальный выбор из существующего бронирования
func selectionFromBooking(booking *domain.BookingRecord) domain.Selection {
	sel := domain.Selection{
		ServiceID:            &booking.ServiceID,
		PhotographerID:       &booking.PhotographerID,
		Date:                 &booking.Date,
		StartTime:            &booking.StartTime,
		AdditionalServiceIDs: append([]domain.ID(nil), booking.AdditionalServiceIDs...),
	}
	if booking.GuestFirstName != nil {
		sel.GuestFirstName = *booking.GuestFirstName
	}
	if booking.GuestLastName != nil {
		sel.GuestLastName = *booking.GuestLastName
	}
	if booking.GuestEmail != nil {
		sel.GuestEmail = *booking.GuestEmail
	}
	return sel
}

func sessionView(session *sessions.Session) *SessionView {
	return &SessionView{
		ID:            session.ID,
		Mode:          session.Mode,
		BookingID:     session.BookingID,
		Authenticated: session.Authenticated,
		Snapshot:      session.Controller.Snapshot(),
		Catalog:       session.Catalog,
	}
}
