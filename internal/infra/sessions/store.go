package sessions

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/cascade"
)

var (
	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("sessions: session not found")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// MetricsRecorder интерфейс для метрик хранилища сессий
// Может быть nil
type MetricsRecorder interface {
	SessionOpened()
	SessionClosed()
}

// Session сессия подбора бронирования
// Контроллер сериализует мутации сам, поэтому сессию можно безопасно
// отдавать нескольким обработчикам
type Session struct {
	ID         string
	Controller *cascade.Controller
	Catalog    *domain.Catalog

	Mode      domain.FlowMode
	BookingID *domain.ID // заполнен только в режиме редактирования

	UserID        *domain.ID
	Authenticated bool
	Discount      float64

	CreatedAt time.Time

	mu         sync.Mutex
	lastAccess time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastAccess) > ttl
}

// Store in-memory хранилище сессий с вытеснением по TTL
// Сессия живет, пока к ней обращаются: каждый Get продлевает срок
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl     time.Duration
	now     func() time.Time
	log     Logger
	metrics MetricsRecorder
}

// NewStore создает хранилище сессий
func NewStore(ttl time.Duration, log Logger, metrics MetricsRecorder) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
		metrics:  metrics,
	}
}

// NewSessionID генерирует идентификатор сессии
func NewSessionID() string {
	return uuid.NewString()
}

// Put регистрирует сессию в хранилище
func (s *Store) Put(session *Session) {
	now := s.now()
	session.CreatedAt = now
	session.touch(now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
	s.log.Info("sessions: session %s opened (mode=%s)", session.ID, session.Mode)
}

// Get возвращает сессию по идентификатору и продлевает ее TTL
func (s *Store) Get(id string) (*Session, error) {
	now := s.now()

	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.expired(now, s.ttl) {
		s.Delete(id)
		return nil, ErrSessionNotFound
	}

	session.touch(now)
	return session, nil
}

// Delete убирает сессию из хранилища
func (s *Store) Delete(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if ok {
		if s.metrics != nil {
			s.metrics.SessionClosed()
		}
		s.log.Info("sessions: session %s closed", id)
	}
}

// Len возвращает количество живых сессий
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanupExpired убирает истекшие сессии, возвращает количество убранных
func (s *Store) CleanupExpired() int {
	now := s.now()

	s.mu.Lock()
	var expired []string
	for id, session := range s.sessions {
		if session.expired(now, s.ttl) {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for range expired {
		if s.metrics != nil {
			s.metrics.SessionClosed()
		}
	}
	if len(expired) > 0 {
		s.log.Info("sessions: cleaned up %d expired sessions", len(expired))
	}
	return len(expired)
}

// RunJanitor периодически вычищает истекшие сессии до отмены контекста
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanupExpired()
		}
	}
}
