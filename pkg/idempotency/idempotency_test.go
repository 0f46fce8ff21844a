package idempotency

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		key         string
		expectedErr error
	}{
		{name: "uuid key", key: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "underscores", key: "create_device_0000001"},
		{name: "exact minimum length", key: strings.Repeat("k", MinKeyLength)},
		{name: "exact maximum length", key: strings.Repeat("k", MaxKeyLength)},
		{name: "too short", key: "short", expectedErr: ErrKeyTooShort},
		{name: "too long", key: strings.Repeat("k", MaxKeyLength+1), expectedErr: ErrKeyTooLong},
		{name: "invalid characters", key: "device!key@123456", expectedErr: ErrKeyInvalid},
		{name: "spaces", key: "device key 123456", expectedErr: ErrKeyInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, Validate(tc.key), tc.expectedErr)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	t.Parallel()

	key := BuildCacheKey("post", "/v1/devices", "550e8400-e29b-41d4-a716-446655440000")

	require.True(t, strings.HasPrefix(key, KeyPrefix+":"))
	require.Len(t, key, len(KeyPrefix)+1+64)
	require.Equal(t, key, BuildCacheKey("POST", "/v1/devices", "550e8400-e29b-41d4-a716-446655440000"))
	require.NotEqual(t, key, BuildCacheKey("POST", "/v1/locations", "550e8400-e29b-41d4-a716-446655440000"))
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	require.Equal(t, Fingerprint([]byte(`{"name":"HQ"}`)), Fingerprint([]byte(`{"name":"HQ"}`)))
	require.NotEqual(t, Fingerprint([]byte(`{"name":"HQ"}`)), Fingerprint([]byte(`{"name":"Lab"}`)))
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	require.False(t, ok)

	_, ok = FromContext(WithKey(context.Background(), ""))
	require.False(t, ok)

	key, ok := FromContext(WithKey(context.Background(), "550e8400-e29b-41d4"))
	require.True(t, ok)
	require.Equal(t, "550e8400-e29b-41d4", key)
}
