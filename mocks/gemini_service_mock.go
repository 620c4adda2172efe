package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGeminiService) ModelName() string {
	return "mock-gemini"
}
