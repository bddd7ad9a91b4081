package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/ghost-wallet/internal/core/domain"
)

// **** SecureStore ****

type mockSecureStore struct {
	mock.Mock
}

func (m *mockSecureStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(key)

	var res []byte
	if a := args.Get(0); a != nil {
		res = a.([]byte)
	}
	return res, args.Error(1)
}

func (m *mockSecureStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *mockSecureStore) Remove(ctx context.Context, key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *mockSecureStore) Clear(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockSecureStore) Close() {}

// **** Network ****

type mockNetwork struct {
	mock.Mock
}

func (m *mockNetwork) GetBalances(
	ctx context.Context, account string,
) ([]domain.TokenBalance, error) {
	args := m.Called(account)

	var res []domain.TokenBalance
	if a := args.Get(0); a != nil {
		res = a.([]domain.TokenBalance)
	}
	return res, args.Error(1)
}

func (m *mockNetwork) GetProposals(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called()

	var res []domain.Proposal
	if a := args.Get(0); a != nil {
		res = a.([]domain.Proposal)
	}
	return res, args.Error(1)
}

func (m *mockNetwork) Wait(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

// **** Biometric ****

type mockBiometric struct {
	mock.Mock
}

func (m *mockBiometric) IsSupported(ctx context.Context) bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockBiometric) Authenticate(ctx context.Context, promptMessage string) bool {
	args := m.Called(promptMessage)
	return args.Bool(0)
}
