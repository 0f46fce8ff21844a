package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/architeacher/inventory/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		locationName  string
		expectedError bool
	}{
		{name: "valid", locationName: "HQ"},
		{name: "blank", locationName: "   ", expectedError: true},
		{name: "too long", locationName: strings.Repeat("x", 256), expectedError: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			location, err := model.NewLocation(tc.locationName, "Main office")
			if tc.expectedError {
				require.ErrorIs(t, err, model.ErrValidation)

				return
			}

			require.NoError(t, err)
			require.False(t, location.ID.IsZero())
			require.Equal(t, "Main office", location.Description)
		})
	}
}

func TestLocationUpdate(t *testing.T) {
	t.Parallel()

	location, err := model.NewLocation("HQ", "Main office")
	require.NoError(t, err)

	_, changed, err := location.Update("HQ", "Main office", time.Now())
	require.NoError(t, err)
	require.False(t, changed)

	at := time.Now().UTC()
	entry, changed, err := location.Update("Head Office", "Main office", at)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, model.ActionLocationUpdated, entry.Action)
	require.Equal(t, "HQ", entry.OldName)
	require.Equal(t, "Head Office", entry.NewName)
	require.Equal(t, "Main office", entry.OldDescription)
	require.Equal(t, location.ID, entry.LocationID)
	require.Equal(t, at, location.UpdatedAt)

	_, _, err = location.Update("", "", at)
	require.ErrorIs(t, err, model.ErrValidation)
	require.Equal(t, "Head Office", location.Name)
}
