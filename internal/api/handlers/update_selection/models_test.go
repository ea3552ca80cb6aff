package update_selection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFlowService/internal/domain"
)

func decode(t *testing.T, body string) *UpdateSelectionRequest {
	t.Helper()
	var req UpdateSelectionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestToChanges_AbsentFieldsAreNotTouched(t *testing.T) {
	req := decode(t, `{}`)

	changes, err := req.ToChanges()

	require.NoError(t, err)
	assert.Nil(t, changes.ServiceID)
	assert.Nil(t, changes.PhotographerID)
	assert.Nil(t, changes.Date)
	assert.Nil(t, changes.StartTime)
	assert.Nil(t, changes.AdditionalServiceIDs)
	assert.Nil(t, changes.GuestFields)
}

func TestToChanges_NullMeansClear(t *testing.T) {
	req := decode(t, `{"photographerId": null, "date": null}`)

	changes, err := req.ToChanges()

	require.NoError(t, err)
	require.NotNil(t, changes.PhotographerID)
	assert.Nil(t, changes.PhotographerID.Value)
	require.NotNil(t, changes.Date)
	assert.Nil(t, changes.Date.Value)
	assert.Nil(t, changes.ServiceID, "непереданное поле не должно сбрасываться")
}

func TestToChanges_Values(t *testing.T) {
	req := decode(t, `{
		"serviceId": 1,
		"photographerId": 10,
		"date": "2026-09-01",
		"startTime": "10:00",
		"additionalServiceIds": [100, 101],
		"guestEmail": "olena@example.com"
	}`)

	changes, err := req.ToChanges()

	require.NoError(t, err)
	assert.Equal(t, domain.ID(1), *changes.ServiceID.Value)
	assert.Equal(t, domain.ID(10), *changes.PhotographerID.Value)
	assert.Equal(t, "2026-09-01", *changes.Date.Value)
	assert.Equal(t, "10:00", *changes.StartTime.Value)
	assert.Equal(t, []domain.ID{100, 101}, *changes.AdditionalServiceIDs)
	assert.Equal(t, "olena@example.com", changes.GuestFields[domain.FieldGuestEmail])
}

func TestToChanges_InvalidType(t *testing.T) {
	req := decode(t, `{"serviceId": "not-a-number"}`)

	_, err := req.ToChanges()

	assert.Error(t, err)
}
