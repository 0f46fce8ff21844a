package model_test

import (
	"encoding/json"
	"testing"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		Status     model.Optional[string]  `json:"status"`
		Protocol   model.Optional[string]  `json:"protocol"`
		LocationID model.Optional[*string] `json:"location_id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"inactive","location_id":null}`), &payload))

	status, ok := payload.Status.Get()
	require.True(t, ok)
	require.Equal(t, "inactive", status)

	require.False(t, payload.Protocol.Present)

	require.True(t, payload.LocationID.Present)
	require.Nil(t, payload.LocationID.Value)
}

func TestDeviceUpdateIsEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, model.DeviceUpdate{}.IsEmpty())
	require.False(t, model.DeviceUpdate{Ports: model.Some([]model.PortSpec{})}.IsEmpty())
}

func TestNewPortSet(t *testing.T) {
	t.Parallel()

	deviceID := model.NewDeviceID()

	ports, err := model.NewPortSet(deviceID, []model.PortSpec{
		{Number: 22, Description: "ssh"},
		{Number: 22, Description: "ssh again"},
		{Number: 443},
	})
	require.NoError(t, err)
	require.Len(t, ports, 3)

	for i, port := range ports {
		require.Equal(t, deviceID, port.DeviceID)
		require.Equal(t, i, port.Position)
	}

	_, err = model.NewPortSet(deviceID, []model.PortSpec{{Number: 0}})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, model.ErrDeviceNotFound, model.ErrNotFound)
	require.ErrorIs(t, model.ErrDuplicateLocationName, model.ErrDuplicateName)
	require.ErrorIs(t, model.ErrUnknownLocation, model.ErrInvalidReference)
	require.ErrorIs(t, model.ErrDatabaseQuery, model.ErrPersistence)
	require.Equal(t, "device not found", model.ErrDeviceNotFound.Error())

	errs := model.NewValidationErrors()
	require.NoError(t, errs.OrNil())

	errs.Add("ip", "must not be blank")
	require.ErrorIs(t, errs.OrNil(), model.ErrValidation)
	require.Equal(t, "ip: must not be blank", errs.Error())

	_, err := model.ParseDeviceID("nope")
	require.ErrorIs(t, err, model.ErrInvalidID)
}
