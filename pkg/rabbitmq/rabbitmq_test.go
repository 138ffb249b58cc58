package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"signup/internal/models"
	"signup/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChannel is a mock implementation of the AMQP channel.
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestClient_PublishAccountRegistered(t *testing.T) {
	ch := new(MockChannel)
	client := rabbitmq.NewClientWithChannel(ch, "account_events")

	account := models.Account{
		ID:           "acc-1",
		Email:        "new@x.com",
		Username:     "newuser1",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	var published amqp.Publishing
	ch.On("Publish", "", "account_events", false, false, mock.AnythingOfType("amqp.Publishing")).
		Run(func(args mock.Arguments) { published = args.Get(4).(amqp.Publishing) }).
		Return(nil).Once()

	err := client.PublishAccountRegistered(context.Background(), account)
	require.NoError(t, err)
	ch.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, rabbitmq.EventAccountRegistered, published.Type)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.NotContains(t, string(published.Body), "secret")

	var event rabbitmq.AccountRegistered
	require.NoError(t, json.Unmarshal(published.Body, &event))
	assert.Equal(t, "acc-1", event.AccountID)
	assert.Equal(t, "newuser1", event.Username)
	assert.Equal(t, "new@x.com", event.Email)
}

func TestClient_PublishAccountRegistered_Error(t *testing.T) {
	ch := new(MockChannel)
	client := rabbitmq.NewClientWithChannel(ch, "account_events")
	ch.On("Publish", "", "account_events", false, false, mock.Anything).Return(errors.New("channel closed")).Once()

	err := client.PublishAccountRegistered(context.Background(), models.Account{ID: "acc-1"})
	assert.ErrorContains(t, err, "channel closed")
	ch.AssertExpectations(t)
}

func TestClient_Close(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Close").Return(nil).Once()

	client := rabbitmq.NewClientWithChannel(ch, "account_events")
	assert.NoError(t, client.Close())
	ch.AssertExpectations(t)
}

func TestClient_Close_ChannelError(t *testing.T) {
	ch := new(MockChannel)
	closeErr := errors.New("channel already closed")
	ch.On("Close").Return(closeErr).Once()

	client := rabbitmq.NewClientWithChannel(ch, "account_events")
	err := client.Close()

	require.Error(t, err)
	assert.ErrorIs(t, err, closeErr)
	assert.Contains(t, err.Error(), "failed to close channel")
	ch.AssertExpectations(t)
}
