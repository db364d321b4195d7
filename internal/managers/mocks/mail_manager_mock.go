package mocks

import "github.com/stretchr/testify/mock"

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) SendMessageNotification(email, ownerName, cardName, senderName string) error {
	args := m.Called(email, ownerName, cardName, senderName)
	return args.Error(0)
}

func (m *MockMailManager) SendAppointmentNotification(email, ownerName, cardName, requesterName, proposedTime string) error {
	args := m.Called(email, ownerName, cardName, requesterName, proposedTime)
	return args.Error(0)
}
