//go:build integration

package itest

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InventoryIntegrationTestSuite struct {
	BaseTestSuite
}

func TestInventoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(InventoryIntegrationTestSuite))
}

func sshDevice() map[string]any {
	return map[string]any{
		"ip":       "10.0.0.5",
		"status":   "active",
		"protocol": "tcp",
		"ports":    []map[string]any{{"number": 22, "description": "ssh"}},
	}
}

func (s *InventoryIntegrationTestSuite) TestLocationNamesAreUnique() {
	location := s.createLocation("HQ", "Main office")
	s.Require().NotEmpty(location.ID)
	s.Require().Equal("Main office", location.Description)

	status, raw := s.do(http.MethodPost, "/v1/locations", map[string]any{"name": "HQ"})
	s.Require().Equal(http.StatusBadRequest, status)
	s.Require().Equal("DUPLICATE_NAME", s.errorCode(raw))

	other := s.createLocation("Branch", "")
	status, raw = s.do(http.MethodPut, "/v1/locations/"+other.ID, map[string]any{"name": "HQ"})
	s.Require().Equal(http.StatusBadRequest, status)
	s.Require().Equal("DUPLICATE_NAME", s.errorCode(raw))

	status, raw = s.do(http.MethodGet, "/v1/locations?name=HQ", nil)
	s.Require().Equal(http.StatusOK, status)

	var found []locationBody
	s.decodeData(raw, &found)
	s.Require().Len(found, 1)
	s.Require().Equal(location.ID, found[0].ID)
}

func (s *InventoryIntegrationTestSuite) TestCreateDeviceWithPorts() {
	device := s.createDevice(sshDevice())

	s.Require().NotEmpty(device.ID)
	s.Require().Nil(device.LocationID)
	s.Require().Len(device.Ports, 1)
	s.Require().Equal(22, device.Ports[0].Number)
	s.Require().Equal("ssh", device.Ports[0].Description)

	status, raw := s.do(http.MethodGet, "/v1/devices", nil)
	s.Require().Equal(http.StatusOK, status)

	var devices []deviceBody
	s.decodeData(raw, &devices)
	s.Require().Len(devices, 1)
	s.Require().Len(devices[0].Ports, 1)
}

func (s *InventoryIntegrationTestSuite) TestStatusChangeIsRecorded() {
	device := s.createDevice(sshDevice())

	status, raw := s.do(http.MethodPut, "/v1/devices/"+device.ID, map[string]any{"status": "inactive"})
	s.Require().Equal(http.StatusOK, status, string(raw))

	entries := s.history("")
	s.Require().Len(entries, 1)
	s.Require().Equal(device.ID, entries[0].DeviceID)
	s.Require().Equal("active", entries[0].OldStatus)
	s.Require().Equal("inactive", entries[0].NewStatus)
}

func (s *InventoryIntegrationTestSuite) TestDeleteUnknownDevice() {
	status, raw := s.do(http.MethodDelete, "/v1/devices/"+uuid.NewString(), nil)

	s.Require().Equal(http.StatusNotFound, status)
	s.Require().Equal("NOT_FOUND", s.errorCode(raw))
}

func (s *InventoryIntegrationTestSuite) TestNoopUpdateLeavesNoHistory() {
	device := s.createDevice(sshDevice())

	status, _ := s.do(http.MethodPut, "/v1/devices/"+device.ID, map[string]any{"status": device.Status})
	s.Require().Equal(http.StatusOK, status)

	s.Require().Empty(s.history(device.ID))
}

func (s *InventoryIntegrationTestSuite) TestChangeStatusRecordsOneEntry() {
	device := s.createDevice(sshDevice())

	status, raw := s.do(http.MethodPut, "/v1/devices/"+device.ID+"/status", map[string]any{"status": "maintenance"})
	s.Require().Equal(http.StatusOK, status, string(raw))

	var updated deviceBody
	s.decodeData(raw, &updated)
	s.Require().Equal("maintenance", updated.Status)

	entries := s.history(device.ID)
	s.Require().Len(entries, 1)
	s.Require().Equal("STATUS_CHANGED", entries[0].Action)
	s.Require().Equal("active", entries[0].OldStatus)
	s.Require().Equal("maintenance", entries[0].NewStatus)
}

func (s *InventoryIntegrationTestSuite) TestPortReplacementIsAtomic() {
	ctx := s.T().Context()
	device := s.createDevice(sshDevice())

	_, err := s.pool.Exec(ctx, `
		CREATE OR REPLACE FUNCTION reject_port_9999() RETURNS trigger AS $$
		BEGIN
			IF NEW.number = 9999 THEN
				RAISE EXCEPTION 'port 9999 rejected';
			END IF;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;
		CREATE TRIGGER reject_port_9999 BEFORE INSERT ON ports
			FOR EACH ROW EXECUTE FUNCTION reject_port_9999();
	`)
	s.Require().NoError(err)

	defer func() {
		_, err := s.pool.Exec(ctx, `
			DROP TRIGGER IF EXISTS reject_port_9999 ON ports;
			DROP FUNCTION IF EXISTS reject_port_9999();
		`)
		s.Require().NoError(err)
	}()

	status, raw := s.do(http.MethodPut, "/v1/devices/"+device.ID+"/ports", map[string]any{
		"ports": []map[string]any{{"number": 80}, {"number": 9999}},
	})
	s.Require().Equal(http.StatusInternalServerError, status, string(raw))
	s.Require().Equal("INTERNAL_ERROR", s.errorCode(raw))

	status, raw = s.do(http.MethodGet, "/v1/devices/"+device.ID, nil)
	s.Require().Equal(http.StatusOK, status)

	var unchanged deviceBody
	s.decodeData(raw, &unchanged)
	s.Require().Len(unchanged.Ports, 1)
	s.Require().Equal(22, unchanged.Ports[0].Number)
}

func (s *InventoryIntegrationTestSuite) TestInvalidPortSetIsRejected() {
	device := s.createDevice(sshDevice())

	status, _ := s.do(http.MethodPut, "/v1/devices/"+device.ID+"/ports", map[string]any{
		"ports": []map[string]any{{"number": 443}, {"number": 0}},
	})
	s.Require().Equal(http.StatusBadRequest, status)

	status, raw := s.do(http.MethodGet, "/v1/devices/"+device.ID, nil)
	s.Require().Equal(http.StatusOK, status)

	var unchanged deviceBody
	s.decodeData(raw, &unchanged)
	s.Require().Len(unchanged.Ports, 1)
}

func (s *InventoryIntegrationTestSuite) TestUnknownLocationIsRejected() {
	body := sshDevice()
	body["location_id"] = uuid.NewString()

	status, raw := s.do(http.MethodPost, "/v1/devices", body)
	s.Require().Equal(http.StatusUnprocessableEntity, status)
	s.Require().Equal("INVALID_REFERENCE", s.errorCode(raw))

	var count int
	s.Require().NoError(s.pool.QueryRow(s.T().Context(), "SELECT COUNT(*) FROM devices").Scan(&count))
	s.Require().Zero(count)
}

func (s *InventoryIntegrationTestSuite) TestLocationMovesAreRecorded() {
	rack := s.createLocation("Rack 1", "")
	lab := s.createLocation("Lab", "")
	device := s.createDevice(sshDevice())

	status, raw := s.do(http.MethodPost, "/v1/devices/"+device.ID+"/assign/"+rack.ID, nil)
	s.Require().Equal(http.StatusOK, status, string(raw))

	status, raw = s.do(http.MethodPost, "/v1/devices/"+device.ID+"/change/"+lab.ID, nil)
	s.Require().Equal(http.StatusOK, status, string(raw))

	var moved deviceBody
	s.decodeData(raw, &moved)
	s.Require().NotNil(moved.LocationID)
	s.Require().Equal(lab.ID, *moved.LocationID)

	status, _ = s.do(http.MethodDelete, "/v1/locations/"+lab.ID, nil)
	s.Require().Equal(http.StatusNoContent, status)

	status, raw = s.do(http.MethodGet, "/v1/devices/"+device.ID, nil)
	s.Require().Equal(http.StatusOK, status)

	var detached deviceBody
	s.decodeData(raw, &detached)
	s.Require().Nil(detached.LocationID)

	entries := s.history(device.ID)
	s.Require().Len(entries, 3)

	actions := make([]string, 0, len(entries))
	for _, entry := range entries {
		actions = append(actions, entry.Action)
	}

	s.Require().ElementsMatch([]string{"LOCATION_ASSIGNED", "LOCATION_CHANGED", "LOCATION_UNASSIGNED"}, actions)
}

func (s *InventoryIntegrationTestSuite) TestDeletedDeviceKeepsHistory() {
	device := s.createDevice(sshDevice())

	status, _ := s.do(http.MethodPut, "/v1/devices/"+device.ID+"/status", map[string]any{"status": "retired"})
	s.Require().Equal(http.StatusOK, status)

	status, _ = s.do(http.MethodDelete, "/v1/devices/"+device.ID, nil)
	s.Require().Equal(http.StatusNoContent, status)

	status, _ = s.do(http.MethodGet, "/v1/devices/"+device.ID, nil)
	s.Require().Equal(http.StatusNotFound, status)

	s.Require().Len(s.history(device.ID), 1)
}

func (s *InventoryIntegrationTestSuite) TestReadiness() {
	status, raw := s.do(http.MethodGet, "/v1/health/ready", nil)

	s.Require().Equal(http.StatusOK, status, string(raw))
}
