package domain

// Selection текущий набор выборов одного бронирования
// Мутируется только каскадным контроллером
type Selection struct {
	ServiceID      *ID
	PhotographerID *ID
	Date           *string // opaque токен даты (YYYY-MM-DD), отдается сервису без изменений
	StartTime      *string // opaque токен времени (HH:MM)

	// Дополнительные услуги, порядок не значим
	AdditionalServiceIDs []ID

	// Гостевые поля, используются только для неавторизованного вызова
	GuestFirstName string
	GuestLastName  string
	GuestEmail     string
}

// IsComplete проверяет, что все зависимые поля выбраны
func (s *Selection) IsComplete() bool {
	return s.ServiceID != nil && s.PhotographerID != nil && s.Date != nil && s.StartTime != nil
}

// HasAdditionalService проверяет, выбрана ли дополнительная услуга
func (s *Selection) HasAdditionalService(id ID) bool {
	for _, v := range s.AdditionalServiceIDs {
		if v == id {
			return true
		}
	}
	return false
}

// AddAdditionalService добавляет дополнительную услугу (идемпотентно)
func (s *Selection) AddAdditionalService(id ID) {
	if s.HasAdditionalService(id) {
		return
	}
	s.AdditionalServiceIDs = append(s.AdditionalServiceIDs, id)
}

// RemoveAdditionalService убирает дополнительную услугу
func (s *Selection) RemoveAdditionalService(id ID) {
	out := s.AdditionalServiceIDs[:0]
	for _, v := range s.AdditionalServiceIDs {
		if v != id {
			out = append(out, v)
		}
	}
	s.AdditionalServiceIDs = out
}

// Reset возвращает выбор в пустое начальное состояние
func (s *Selection) Reset() {
	*s = Selection{}
}

// Clone возвращает независимую копию выбора
func (s *Selection) Clone() Selection {
	out := *s
	if s.ServiceID != nil {
		v := *s.ServiceID
		out.ServiceID = &v
	}
	if s.PhotographerID != nil {
		v := *s.PhotographerID
		out.PhotographerID = &v
	}
	if s.Date != nil {
		v := *s.Date
		out.Date = &v
	}
	if s.StartTime != nil {
		v := *s.StartTime
		out.StartTime = &v
	}
	if s.AdditionalServiceIDs != nil {
		out.AdditionalServiceIDs = append([]ID(nil), s.AdditionalServiceIDs...)
	}
	return out
}
