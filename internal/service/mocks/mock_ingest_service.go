package mocks

import (
	"context"

	"loganalyzer/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Admit(ctx context.Context, req model.UploadRequest) (*model.AdmissionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdmissionResult), args.Error(1)
}
