package update_selection

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
	"github.com/m04kA/SMC-BookingFlowService/internal/service/flow"
)

// UpdateSelectionRequest частичное обновление выбора
// Поля зависимой цепочки принимают null как "снять выбор", поэтому
// декодируются через RawMessage: отсутствие поля и null различаются
type UpdateSelectionRequest struct {
	ServiceID      json.RawMessage `json:"serviceId,omitempty"`
	PhotographerID json.RawMessage `json:"photographerId,omitempty"`
	Date           json.RawMessage `json:"date,omitempty"`
	StartTime      json.RawMessage `json:"startTime,omitempty"`

	AdditionalServiceIDs      *[]int64 `json:"additionalServiceIds,omitempty"`
	ToggleAdditionalServiceID *int64   `json:"toggleAdditionalServiceId,omitempty"`

	GuestFirstName *string `json:"guestFirstName,omitempty"`
	GuestLastName  *string `json:"guestLastName,omitempty"`
	GuestEmail     *string `json:"guestEmail,omitempty"`
}

var nullToken = []byte("null")

// ToChanges конвертирует HTTP запрос в модель сервиса
func (r *UpdateSelectionRequest) ToChanges() (*flow.SelectionChanges, error) {
	changes := &flow.SelectionChanges{}

	idChange, err := parseNullableID(r.ServiceID, "serviceId")
	if err != nil {
		return nil, err
	}
	changes.ServiceID = idChange

	idChange, err = parseNullableID(r.PhotographerID, "photographerId")
	if err != nil {
		return nil, err
	}
	changes.PhotographerID = idChange

	strChange, err := parseNullableString(r.Date, "date")
	if err != nil {
		return nil, err
	}
	changes.Date = strChange

	strChange, err = parseNullableString(r.StartTime, "startTime")
	if err != nil {
		return nil, err
	}
	changes.StartTime = strChange

	if r.AdditionalServiceIDs != nil {
		ids := make([]domain.ID, 0, len(*r.AdditionalServiceIDs))
		for _, id := range *r.AdditionalServiceIDs {
			ids = append(ids, domain.ID(id))
		}
		changes.AdditionalServiceIDs = &ids
	}
	if r.ToggleAdditionalServiceID != nil {
		id := domain.ID(*r.ToggleAdditionalServiceID)
		changes.ToggleAdditionalServiceID = &id
	}

	guestFields := make(map[string]string)
	if r.GuestFirstName != nil {
		guestFields[domain.FieldGuestFirstName] = *r.GuestFirstName
	}
	if r.GuestLastName != nil {
		guestFields[domain.FieldGuestLastName] = *r.GuestLastName
	}
	if r.GuestEmail != nil {
		guestFields[domain.FieldGuestEmail] = *r.GuestEmail
	}
	if len(guestFields) > 0 {
		changes.GuestFields = guestFields
	}

	return changes, nil
}

func parseNullableID(raw json.RawMessage, field string) (*flow.NullableID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), nullToken) {
		return &flow.NullableID{}, nil
	}

	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("field %s: %w", field, err)
	}
	v := domain.ID(id)
	return &flow.NullableID{Value: &v}, nil
}

func parseNullableString(raw json.RawMessage, field string) (*flow.NullableString, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), nullToken) {
		return &flow.NullableString{}, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("field %s: %w", field, err)
	}
	return &flow.NullableString{Value: &s}, nil
}
