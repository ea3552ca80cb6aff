package cascade

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/pricing"
)

// Сообщения о неуспешной загрузке опций
// Не блокируют остальные поля: набор сбрасывается в пустой, подбор продолжается
const (
	noticeDatesLoadFailed = "Помилка завантаження доступних дат"
	noticeSlotsLoadFailed = "Помилка завантаження слотів"
)

// Controller каскадный контроллер одной сессии подбора
// Единственный владелец Selection: все мутации проходят через него
// и сериализуются мьютексом; завершения сетевых запросов входят под тот же
// мьютекс и применяются только после проверки guard'а
//
// Один и тот же контроллер обслуживает создание и редактирование
// бронирования - различаются только начальный Selection и режим отправки
type Controller struct {
	mu sync.Mutex

	catalog *domain.Catalog
	gateway AvailabilityGateway
	guard   StaleGuard
	logger  Logger
	metrics MetricsRecorder

	authenticated bool
	discount      float64

	selection   domain.Selection
	dateOptions domain.OptionSet
	slotOptions domain.OptionSet

	loadingDates bool
	loadingSlots bool

	fieldErrors map[string]string
	notice      string

	// Точка запуска фоновых загрузок, в тестах подменяется синхронной
	spawn func(fn func())
}

// NewController создает контроллер с пустым начальным выбором
func NewController(
	catalog *domain.Catalog,
	gateway AvailabilityGateway,
	staleGuard StaleGuard,
	params Params,
	logger Logger,
	metrics MetricsRecorder,
) *Controller {
	return &Controller{
		catalog:       catalog,
		gateway:       gateway,
		guard:         staleGuard,
		logger:        logger,
		metrics:       metrics,
		authenticated: params.Authenticated,
		discount:      params.Discount,
		fieldErrors:   make(map[string]string),
		spawn:         func(fn func()) { go fn() },
	}
}

// datesFetch параметры запущенного запроса дат
type datesFetch struct {
	gen            uint64
	photographerID domain.ID
	serviceID      domain.ID
}

// slotsFetch параметры запущенного запроса слотов
type slotsFetch struct {
	gen            uint64
	photographerID domain.ID
	serviceID      domain.ID
	date           string
}

// SetService применяет выбор услуги
// Смена услуги всегда сбрасывает фотографа, дату и время вместе с их
// наборами опций, независимо от прежнего состояния
func (c *Controller) SetService(id *domain.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != nil && c.catalog.ServiceByID(*id) == nil {
		return ErrServiceNotFound
	}

	c.selection.ServiceID = id
	c.clearFieldStateLocked(domain.FieldService)

	// Каскад вниз: фотограф -> дата -> время
	c.resetPhotographerLocked()
	c.resetDateLocked()
	c.resetTimeLocked()

	// Отменяем оба каскада в полете; новых запросов нет -
	// без фотографа комбинация недостаточна для запроса дат
	c.invalidateDatesLocked()
	c.invalidateSlotsLocked()

	c.logger.Info("cascade: service set to %v, downstream fields reset", idOrNil(id))
	return nil
}

// SetPhotographer применяет выбор фотографа
// Фотограф обязан быть активным и выполнять выбранную услугу:
// список на границе ввода уже отфильтрован, нарушение - некорректный переход
func (c *Controller) SetPhotographer(id *domain.ID) error {
	c.mu.Lock()

	if id != nil {
		if c.selection.ServiceID == nil {
			c.mu.Unlock()
			return ErrUpstreamNotSelected
		}
		ph := c.catalog.PhotographerByID(*id)
		if ph == nil {
			c.mu.Unlock()
			return ErrPhotographerNotFound
		}
		if !ph.IsActive || !ph.Offers(*c.selection.ServiceID) {
			c.mu.Unlock()
			return ErrPhotographerNotAvailable
		}
	}

	c.selection.PhotographerID = id
	c.clearFieldStateLocked(domain.FieldPhotographer)

	c.resetDateLocked()
	c.resetTimeLocked()

	// Смена фотографа отменяет запрос слотов в полете, даже если новый
	// запрос слотов не последует
	c.invalidateSlotsLocked()

	fetch := c.beginDatesFetchLocked()
	c.mu.Unlock()

	if fetch != nil {
		c.spawn(func() { c.fetchDates(fetch) })
	}

	c.logger.Info("cascade: photographer set to %v", idOrNil(id))
	return nil
}

// SetDate применяет выбор даты
// Дата должна принадлежать загруженному набору доступных дат
func (c *Controller) SetDate(date *string) error {
	c.mu.Lock()

	if date != nil {
		if c.selection.ServiceID == nil || c.selection.PhotographerID == nil {
			c.mu.Unlock()
			return ErrUpstreamNotSelected
		}
		if c.dateOptions.Loaded && !c.dateOptions.Contains(*date) {
			c.mu.Unlock()
			return ErrDateNotAvailable
		}
	}

	c.selection.Date = date
	c.clearFieldStateLocked(domain.FieldDate)

	c.resetTimeLocked()

	var fetch *slotsFetch
	if date != nil {
		fetch = c.beginSlotsFetchLocked()
	} else {
		c.invalidateSlotsLocked()
	}
	c.mu.Unlock()

	if fetch != nil {
		c.spawn(func() { c.fetchSlots(fetch) })
	}

	c.logger.Info("cascade: date set to %v", strOrNil(date))
	return nil
}

// SetTime применяет выбор времени начала
func (c *Controller) SetTime(startTime *string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if startTime != nil {
		if c.selection.Date == nil {
			return ErrUpstreamNotSelected
		}
		if c.slotOptions.Loaded && !c.slotOptions.Contains(*startTime) {
			return ErrTimeNotAvailable
		}
	}

	c.selection.StartTime = startTime
	c.clearFieldStateLocked(domain.FieldStartTime)

	c.logger.Info("cascade: start time set to %v", strOrNil(startTime))
	return nil
}

// ToggleAdditionalService добавляет или убирает дополнительную услугу
func (c *Controller) ToggleAdditionalService(id domain.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalog.AdditionalServiceByID(id) == nil {
		return ErrAdditionalServiceNotFound
	}

	if c.selection.HasAdditionalService(id) {
		c.selection.RemoveAdditionalService(id)
	} else {
		c.selection.AddAdditionalService(id)
	}
	c.notice = ""

	return nil
}

// SetAdditionalServices заменяет весь набор дополнительных услуг
// Используется в режиме редактирования: пустой список снимает все услуги
func (c *Controller) SetAdditionalServices(ids []domain.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		if c.catalog.AdditionalServiceByID(id) == nil {
			return ErrAdditionalServiceNotFound
		}
	}

	c.selection.AdditionalServiceIDs = append([]domain.ID(nil), ids...)
	c.notice = ""

	return nil
}

// SetGuestField применяет значение гостевого поля
// Ошибка валидации этого поля очищается при правке
func (c *Controller) SetGuestField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case domain.FieldGuestFirstName:
		c.selection.GuestFirstName = value
	case domain.FieldGuestLastName:
		c.selection.GuestLastName = value
	case domain.FieldGuestEmail:
		c.selection.GuestEmail = value
	default:
		return ErrUnknownGuestField
	}

	c.clearFieldStateLocked(field)
	return nil
}

// Prepopulate инициализирует выбор из существующего бронирования
// (режим редактирования) и запускает оба каскада загрузки опций
// Предзаполненные значения, которых больше нет в загруженных наборах,
// будут сброшены при применении ответов
func (c *Controller) Prepopulate(sel domain.Selection) {
	c.mu.Lock()

	c.selection = sel.Clone()

	datesFetch := c.beginDatesFetchLocked()
	var slots *slotsFetch
	if c.selection.Date != nil {
		slots = c.beginSlotsFetchLocked()
	}
	c.mu.Unlock()

	if datesFetch != nil {
		c.spawn(func() { c.fetchDates(datesFetch) })
	}
	if slots != nil {
		c.spawn(func() { c.fetchSlots(slots) })
	}
}

// ApplyFieldErrors записывает ошибки локальной валидации отправки
// Очищаются по-полевой правкой
func (c *Controller) ApplyFieldErrors(errs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for field, msg := range errs {
		c.fieldErrors[field] = msg
	}
}

// ClearSelection возвращает сессию в пустое начальное состояние
// Вызывается после успешного создания бронирования
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Reset()
	c.dateOptions.Clear()
	c.slotOptions.Clear()
	c.invalidateDatesLocked()
	c.invalidateSlotsLocked()
	c.fieldErrors = make(map[string]string)
	c.notice = ""
}

// Selection возвращает копию текущего выбора
func (c *Controller) Selection() domain.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Clone()
}

// Quote возвращает текущую котировку цены
func (c *Controller) Quote() domain.PriceQuote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.QuoteSelection(c.catalog, &c.selection, c.discount, c.authenticated)
}

// Snapshot возвращает консистентный снимок состояния сессии
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	fieldErrors := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		fieldErrors[k] = v
	}

	photographers := []domain.Photographer{}
	if c.selection.ServiceID != nil {
		photographers = c.catalog.PhotographersForService(*c.selection.ServiceID)
	}

	return Snapshot{
		Selection: c.selection.Clone(),
		DateOptions: OptionsView{
			Values: append([]string(nil), c.dateOptions.Values...),
			Loaded: c.dateOptions.Loaded,
		},
		SlotOptions: OptionsView{
			Values: append([]string(nil), c.slotOptions.Values...),
			Loaded: c.slotOptions.Loaded,
		},
		LoadingDates:  c.loadingDates,
		LoadingSlots:  c.loadingSlots,
		Photographers: photographers,
		FieldErrors:   fieldErrors,
		Notice:        c.notice,
		Quote:         pricing.QuoteSelection(c.catalog, &c.selection, c.discount, c.authenticated),
	}
}

// ============================================================
// Запуск и применение загрузок опций
// ============================================================

// beginDatesFetchLocked начинает загрузку дат, если комбинация достаточна
// (услуга + фотограф); иначе отменяет каскад дат без сетевого вызова
func (c *Controller) beginDatesFetchLocked() *datesFetch {
	if c.selection.ServiceID == nil || c.selection.PhotographerID == nil {
		c.invalidateDatesLocked()
		return nil
	}

	gen := c.guard.Begin(domain.CascadeDates)
	c.loadingDates = true
	return &datesFetch{
		gen:            gen,
		photographerID: *c.selection.PhotographerID,
		serviceID:      *c.selection.ServiceID,
	}
}

// beginSlotsFetchLocked начинает загрузку слотов, если комбинация достаточна
// (услуга + фотограф + дата)
func (c *Controller) beginSlotsFetchLocked() *slotsFetch {
	if c.selection.ServiceID == nil || c.selection.PhotographerID == nil || c.selection.Date == nil {
		c.invalidateSlotsLocked()
		return nil
	}

	gen := c.guard.Begin(domain.CascadeSlots)
	c.loadingSlots = true
	return &slotsFetch{
		gen:            gen,
		photographerID: *c.selection.PhotographerID,
		serviceID:      *c.selection.ServiceID,
		date:           *c.selection.Date,
	}
}

// fetchDates выполняет запрос дат и применяет результат
// Ответ устаревшего поколения отбрасывается молча: ни значения, ни ошибка
// не попадают в состояние
func (c *Controller) fetchDates(f *datesFetch) {
	values, err := c.gateway.GetAvailableDates(context.Background(), f.photographerID, f.serviceID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard.IsCurrent(domain.CascadeDates, f.gen) {
		c.dropStaleLocked(domain.CascadeDates, f.gen)
		return
	}

	c.loadingDates = false

	if err != nil {
		c.logger.Error("cascade: failed to load available dates (photographer=%d, service=%d): %v",
			f.photographerID, f.serviceID, err)
		c.dateOptions = domain.OptionSet{Values: []string{}, Generation: f.gen, Loaded: true}
		c.notice = noticeDatesLoadFailed
		return
	}

	c.dateOptions = domain.OptionSet{Values: values, Generation: f.gen, Loaded: true}
	c.logger.Info("cascade: loaded %d available dates (photographer=%d, service=%d)",
		len(values), f.photographerID, f.serviceID)

	// Выбранная дата могла исчезнуть из набора (режим редактирования,
	// перезагрузка опций) - сбрасываем ее вместе со временем
	if c.selection.Date != nil && !c.dateOptions.Contains(*c.selection.Date) {
		c.logger.Warn("cascade: selected date %s is no longer available, resetting", *c.selection.Date)
		c.resetDateLocked()
		c.resetTimeLocked()
		c.invalidateSlotsLocked()
	}
}

// fetchSlots выполняет запрос слотов и применяет результат
func (c *Controller) fetchSlots(f *slotsFetch) {
	values, err := c.gateway.GetAvailableSlots(context.Background(), f.photographerID, f.serviceID, f.date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.guard.IsCurrent(domain.CascadeSlots, f.gen) {
		c.dropStaleLocked(domain.CascadeSlots, f.gen)
		return
	}

	c.loadingSlots = false

	if err != nil {
		c.logger.Error("cascade: failed to load slots (photographer=%d, service=%d, date=%s): %v",
			f.photographerID, f.serviceID, f.date, err)
		c.slotOptions = domain.OptionSet{Values: []string{}, Generation: f.gen, Loaded: true}
		c.notice = noticeSlotsLoadFailed
		return
	}

	c.slotOptions = domain.OptionSet{Values: values, Generation: f.gen, Loaded: true}
	c.logger.Info("cascade: loaded %d slots (photographer=%d, service=%d, date=%s)",
		len(values), f.photographerID, f.serviceID, f.date)

	if c.selection.StartTime != nil && !c.slotOptions.Contains(*c.selection.StartTime) {
		c.logger.Warn("cascade: selected time %s is no longer available, resetting", *c.selection.StartTime)
		c.resetTimeLocked()
	}
}

func (c *Controller) dropStaleLocked(fieldKey string, gen uint64) {
	c.logger.Info("cascade: dropping stale %s response (generation %d)", fieldKey, gen)
	if c.metrics != nil {
		c.metrics.IncStaleDropped(fieldKey)
	}
}

// ============================================================
// Сбросы нижестоящих полей
// ============================================================

func (c *Controller) resetPhotographerLocked() {
	c.selection.PhotographerID = nil
	delete(c.fieldErrors, domain.FieldPhotographer)
	c.dateOptions.Clear()
	c.loadingDates = false
}

func (c *Controller) resetDateLocked() {
	c.selection.Date = nil
	delete(c.fieldErrors, domain.FieldDate)
	// Набор дат принадлежит паре услуга+фотограф, сброс самой даты его
	// не очищает; очищается набор слотов
	c.slotOptions.Clear()
	c.loadingSlots = false
}

func (c *Controller) resetTimeLocked() {
	c.selection.StartTime = nil
	delete(c.fieldErrors, domain.FieldStartTime)
}

func (c *Controller) invalidateDatesLocked() {
	c.guard.Invalidate(domain.CascadeDates)
	c.dateOptions.Clear()
	c.loadingDates = false
}

func (c *Controller) invalidateSlotsLocked() {
	c.guard.Invalidate(domain.CascadeSlots)
	c.slotOptions.Clear()
	c.loadingSlots = false
}

// clearFieldStateLocked очищает ошибку поля и общее уведомление при правке
func (c *Controller) clearFieldStateLocked(field string) {
	delete(c.fieldErrors, field)
	c.notice = ""
}

func idOrNil(id *domain.ID) interface{} {
	if id == nil {
		return "<nil>"
	}
	return *id
}

func strOrNil(s *string) interface{} {
	if s == nil {
		return "<nil>"
	}
	return *s
}
