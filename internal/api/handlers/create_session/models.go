package create_session

import (
	"github.com/m04kA/SMC-BookingFlowService/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

// CreateSessionRequest HTTP request model
// Mode: "create" или "edit"; bookingId обязателен для "edit"
type CreateSessionRequest struct {
	Mode            string  `json:"mode"`
	BookingID       *int64  `json:"bookingId,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionRequest) ToServiceRequest(identity middleware.IdentityData) *flow.CreateSessionRequest {
	var bookingID *domain.ID
	if r.BookingID != nil {
		id := domain.ID(*r.BookingID)
		bookingID = &id
	}

	return &flow.CreateSessionRequest{
		Mode:          domain.FlowMode(r.Mode),
		BookingID:     bookingID,
		UserID:        identity.UserID,
		Authenticated: identity.Authenticated,
		Discount:      r.DiscountPercent,
	}
}
