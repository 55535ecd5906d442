package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Thammasok/user-api/models"
)

// PublisherMock is a testify/mock for events.Publisher.
type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) Publish(event models.UserEvent) error {
	return m.Called(event).Error(0)
}

func (m *PublisherMock) Close() error {
	return m.Called().Error(0)
}
