package biometric_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/ghost-wallet/internal/infrastructure/biometric"
)

var (
	ctx        = context.Background()
	errPlatorm = errors.New("platform failure")
)

type mockPlatform struct {
	mock.Mock
}

func (m *mockPlatform) HasHardware(ctx context.Context) (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *mockPlatform) IsEnrolled(ctx context.Context) (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *mockPlatform) Authenticate(
	ctx context.Context, opts biometric.PromptOptions,
) (bool, error) {
	args := m.Called(opts.PromptMessage)
	if fn, ok := args.Get(0).(func()); ok && fn != nil {
		fn()
	}
	return args.Bool(1), args.Error(2)
}

func TestNewService(t *testing.T) {
	svc, err := biometric.NewService(nil)
	require.Nil(t, svc)
	require.EqualError(t, err, biometric.ErrNullPlatform.Error())
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name        string
		hardware    bool
		hardwareErr error
		enrolled    bool
		enrolledErr error
		expected    bool
	}{
		{"supported", true, nil, true, nil, true},
		{"not_enrolled", true, nil, false, nil, false},
		{"no_hardware", false, nil, true, nil, false},
		{"hardware_error", true, errPlatorm, true, nil, false},
		{"enrollment_error", true, nil, true, errPlatorm, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &mockPlatform{}
			platform.On("HasHardware").Return(tt.hardware, tt.hardwareErr)
			platform.On("IsEnrolled").Return(tt.enrolled, tt.enrolledErr)

			svc, err := biometric.NewService(platform)
			require.NoError(t, err)
			require.Equal(t, tt.expected, svc.IsSupported(ctx))
		})
	}
}

func TestAuthenticateFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		before   func()
		result   bool
		err      error
		expected bool
	}{
		{"success", nil, true, nil, true},
		{"rejected", nil, false, nil, false},
		{"error", nil, true, errPlatorm, false},
		{"panic", func() { panic("native module crashed") }, true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := &mockPlatform{}
			platform.
				On("Authenticate", "Authenticate to continue").
				Return(tt.before, tt.result, tt.err)

			svc, err := biometric.NewService(platform)
			require.NoError(t, err)
			require.Equal(
				t, tt.expected, svc.Authenticate(ctx, "Authenticate to continue"),
			)
		})
	}
}

func TestStaticPlatform(t *testing.T) {
	svc, err := biometric.NewService(biometric.NewStaticPlatform(true, true))
	require.NoError(t, err)
	require.True(t, svc.IsSupported(ctx))
	require.True(t, svc.Authenticate(ctx, "prompt"))

	svc, err = biometric.NewService(biometric.NewStaticPlatform(false, true))
	require.NoError(t, err)
	require.False(t, svc.IsSupported(ctx))
	require.False(t, svc.Authenticate(ctx, "prompt"))
}
