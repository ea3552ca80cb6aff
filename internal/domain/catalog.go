package domain

// Service услуга студии из каталога
type Service struct {
	ID              ID
	Name            string
	Price           float64
	DurationMinutes int
}

// Photographer фотограф студии
// ServiceIDs - услуги, которые фотограф выполняет
type Photographer struct {
	ID         ID
	FirstName  string
	LastName   string
	IsActive   bool
	ServiceIDs []ID
}

// Offers проверяет, что фотограф выполняет указанную услугу
func (p *Photographer) Offers(serviceID ID) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// AdditionalService дополнительная платная услуга к основной
type AdditionalService struct {
	ID          ID
	Name        string
	Description string
	Price       float64
}

// Catalog снимок каталога студии на момент открытия сессии
// Движок его только читает: цены и связь фотограф-услуги
type Catalog struct {
	Services           []Service
	Photographers      []Photographer
	AdditionalServices []AdditionalService
}

// ServiceByID возвращает услугу по ID или nil
func (c *Catalog) ServiceByID(id ID) *Service {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i]
		}
	}
	return nil
}

// PhotographerByID возвращает фотографа по ID или nil
func (c *Catalog) PhotographerByID(id ID) *Photographer {
	for i := range c.Photographers {
		if c.Photographers[i].ID == id {
			return &c.Photographers[i]
		}
	}
	return nil
}

// AdditionalServiceByID возвращает дополнительную услугу по ID или nil
func (c *Catalog) AdditionalServiceByID(id ID) *AdditionalService {
	for i := range c.AdditionalServices {
		if c.AdditionalServices[i].ID == id {
			return &c.AdditionalServices[i]
		}
	}
	return nil
}

// PhotographersForService возвращает активных фотографов, выполняющих услугу
// Именно этот отфильтрованный список видит пользователь: выбор фотографа,
// не выполняющего услугу, отсекается на границе ввода
func (c *Catalog) PhotographersForService(serviceID ID) []Photographer {
	out := make([]Photographer, 0)
	for _, p := range c.Photographers {
		if p.IsActive && p.Offers(serviceID) {
			out = append(out, p)
		}
	}
	return out
}
