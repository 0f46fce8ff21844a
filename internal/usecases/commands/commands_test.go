package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/architeacher/inventory/internal/mocks"
	"github.com/architeacher/inventory/internal/ports"
	"github.com/architeacher/inventory/internal/usecases/commands"
	"github.com/architeacher/inventory/pkg/logger"
	"github.com/architeacher/inventory/pkg/metrics/noop"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

func TestCreateDeviceCommandHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	tp := otelNoop.NewTracerProvider()
	mc := noop.NewMetricsClient()
	locationID := model.NewLocationID()

	cases := []struct {
		name        string
		cmd         commands.CreateDeviceCommand
		setupSvc    func(*mocks.FakeDevicesService)
		expectedErr error
	}{
		{
			name: "forwards every field to the service",
			cmd: commands.CreateDeviceCommand{
				IP:         "10.0.0.1",
				Status:     "active",
				Protocol:   "ssh",
				LocationID: &locationID,
				Ports:      []model.PortSpec{{Number: 22}},
			},
			setupSvc: func(fake *mocks.FakeDevicesService) {
				fake.CreateDeviceStub = func(_ context.Context, params ports.CreateDeviceParams) (*model.Device, error) {
					return &model.Device{
						ID:         model.NewDeviceID(),
						IP:         params.IP,
						Status:     params.Status,
						Protocol:   params.Protocol,
						LocationID: params.LocationID,
						Ports:      []model.Port{{Number: params.Ports[0].Number}},
					}, nil
				}
			},
		},
		{
			name: "unknown location",
			cmd:  commands.CreateDeviceCommand{IP: "10.0.0.1", Status: "active", Protocol: "ssh", LocationID: &locationID},
			setupSvc: func(fake *mocks.FakeDevicesService) {
				fake.CreateDeviceReturns(nil, model.ErrUnknownLocation)
			},
			expectedErr: model.ErrInvalidReference,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeDevicesService{}
			tc.setupSvc(svc)

			handler := commands.NewCreateDeviceCommandHandler(svc, log, mc, tp)
			device, err := handler.Handle(t.Context(), tc.cmd)

			require.Equal(t, 1, svc.CreateDeviceCallCount())

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.Nil(t, device)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.cmd.IP, device.IP)
			require.Equal(t, &locationID, device.LocationID)
			require.Len(t, device.Ports, 1)
		})
	}
}

func TestUpdateDeviceCommandHandler(t *testing.T) {
	t.Parallel()

	svc := &mocks.FakeDevicesService{}
	id := model.NewDeviceID()
	update := model.DeviceUpdate{Status: model.Some("inactive")}
	svc.UpdateDeviceReturns(&model.Device{ID: id, Status: "inactive"}, nil)

	handler := commands.NewUpdateDeviceCommandHandler(
		svc, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider(),
	)

	device, err := handler.Handle(t.Context(), commands.UpdateDeviceCommand{ID: id, Update: update})
	require.NoError(t, err)
	require.Equal(t, "inactive", device.Status)

	_, gotID, gotUpdate := svc.UpdateDeviceArgsForCall(0)
	require.Equal(t, id, gotID)
	require.Equal(t, update, gotUpdate)
}

func TestLocationMoveCommandHandlers(t *testing.T) {
	t.Parallel()

	deviceID := model.NewDeviceID()
	locationID := model.NewLocationID()
	log := logger.NewTestLogger()

	t.Run("assign", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeDevicesService{}
		svc.AssignLocationReturns(&model.Device{ID: deviceID, LocationID: &locationID}, nil)

		handler := commands.NewAssignLocationCommandHandler(svc, log, noop.NewMetricsClient(), otelNoop.NewTracerProvider())
		device, err := handler.Handle(t.Context(), commands.AssignLocationCommand{DeviceID: deviceID, LocationID: locationID})
		require.NoError(t, err)
		require.Equal(t, locationID, *device.LocationID)
		require.Equal(t, 0, svc.ChangeLocationCallCount())
	})

	t.Run("change", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeDevicesService{}
		svc.ChangeLocationReturns(nil, model.ErrDeviceNotFound)

		handler := commands.NewChangeLocationCommandHandler(svc, log, noop.NewMetricsClient(), otelNoop.NewTracerProvider())
		_, err := handler.Handle(t.Context(), commands.ChangeLocationCommand{DeviceID: deviceID, LocationID: locationID})
		require.ErrorIs(t, err, model.ErrNotFound)

		_, gotDevice, gotLocation := svc.ChangeLocationArgsForCall(0)
		require.Equal(t, deviceID, gotDevice)
		require.Equal(t, locationID, gotLocation)
	})
}

func TestChangeStatusAndReplacePortsCommandHandlers(t *testing.T) {
	t.Parallel()

	id := model.NewDeviceID()
	svc := &mocks.FakeDevicesService{}
	svc.ChangeStatusReturns(&model.Device{ID: id, Status: "maintenance"}, nil)
	svc.ReplacePortsStub = func(_ context.Context, _ model.DeviceID, specs []model.PortSpec) (*model.Device, error) {
		set := make([]model.Port, 0, len(specs))
		for i, spec := range specs {
			set = append(set, model.Port{Number: spec.Number, Position: i})
		}

		return &model.Device{ID: id, Ports: set}, nil
	}

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	device, err := commands.NewChangeStatusCommandHandler(svc, log, mc, tp).
		Handle(t.Context(), commands.ChangeStatusCommand{DeviceID: id, Status: "maintenance"})
	require.NoError(t, err)
	require.Equal(t, "maintenance", device.Status)

	device, err = commands.NewReplacePortsCommandHandler(svc, log, mc, tp).
		Handle(t.Context(), commands.ReplacePortsCommand{DeviceID: id, Ports: []model.PortSpec{{Number: 80}, {Number: 443}}})
	require.NoError(t, err)
	require.Len(t, device.Ports, 2)
	require.Equal(t, 443, device.Ports[1].Number)
}

func TestDeleteCommandHandlers(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()
	errBoom := errors.New("boom")

	t.Run("device deleted", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeDevicesService{}
		result, err := commands.NewDeleteDeviceCommandHandler(svc, log, mc, tp).
			Handle(t.Context(), commands.DeleteDeviceCommand{ID: model.NewDeviceID()})
		require.NoError(t, err)
		require.True(t, result.Success)
	})

	t.Run("location delete failure", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FakeLocationsService{}
		svc.DeleteLocationReturns(errBoom)

		result, err := commands.NewDeleteLocationCommandHandler(svc, log, mc, tp).
			Handle(t.Context(), commands.DeleteLocationCommand{ID: model.NewLocationID()})
		require.ErrorIs(t, err, errBoom)
		require.False(t, result.Success)
	})
}

func TestLocationCommandHandlers(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	svc := &mocks.FakeLocationsService{}
	svc.CreateLocationStub = func(_ context.Context, name, description string) (*model.Location, error) {
		return model.NewLocation(name, description)
	}
	svc.UpdateLocationReturns(nil, model.ErrDuplicateLocationName)

	location, err := commands.NewCreateLocationCommandHandler(svc, log, mc, tp).
		Handle(t.Context(), commands.CreateLocationCommand{Name: "Lab", Description: "floor 2"})
	require.NoError(t, err)
	require.Equal(t, "Lab", location.Name)

	_, err = commands.NewUpdateLocationCommandHandler(svc, log, mc, tp).
		Handle(t.Context(), commands.UpdateLocationCommand{ID: location.ID, Name: "Taken"})
	require.ErrorIs(t, err, model.ErrDuplicateName)
}
