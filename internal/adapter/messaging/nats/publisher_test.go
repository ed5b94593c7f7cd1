package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type MockConn struct{ mock.Mock }

func (m *MockConn) PublishMsg(msg *nats.Msg) error {
	args := m.Called(msg)
	return args.Error(0)
}
func (m *MockConn) IsClosed() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *MockConn) Drain() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockConn) Close() {
	m.Called()
}

func TestSubject(t *testing.T) {
	n := &domain.Notification{Subject: "property", Action: "approve"}

	assert.Equal(t, "admin.property.approve", Subject(n))
}

func TestPublisher_Notify(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "request")
	defer span.End()

	conn := new(MockConn)
	var sent *nats.Msg
	conn.On("PublishMsg", mock.AnythingOfType("*nats.Msg")).
		Run(func(args mock.Arguments) { sent = args.Get(0).(*nats.Msg) }).
		Return(nil).Once()

	p := newPublisher(conn, logger.NewNop())
	n := &domain.Notification{ID: "n1", Subject: "user", Action: "suspend", Title: "Utilisateur suspendu"}

	require.NoError(t, p.Notify(ctx, n))

	conn.AssertExpectations(t)
	require.NotNil(t, sent)
	assert.Equal(t, "admin.user.suspend", sent.Subject)
	assert.NotEmpty(t, sent.Header.Get("traceparent"))

	var got domain.Notification
	require.NoError(t, json.Unmarshal(sent.Data, &got))
	assert.Equal(t, "Utilisateur suspendu", got.Title)
}

func TestPublisher_PublishError(t *testing.T) {
	conn := new(MockConn)
	conn.On("PublishMsg", mock.Anything).Return(errors.New("nats: connection closed")).Once()

	err := newPublisher(conn, logger.NewNop()).Publish(context.Background(), "admin.x.y", map[string]string{"a": "b"})

	assert.ErrorContains(t, err, "admin.x.y")
	conn.AssertExpectations(t)
}

func TestPublisher_MarshalError(t *testing.T) {
	conn := new(MockConn)

	err := newPublisher(conn, logger.NewNop()).Publish(context.Background(), "admin.x.y", make(chan int))

	assert.Error(t, err)
	conn.AssertNotCalled(t, "PublishMsg", mock.Anything)
}

func TestPublisher_Close(t *testing.T) {
	conn := new(MockConn)
	conn.On("IsClosed").Return(false).Once()
	conn.On("Drain").Return(nil).Once()
	conn.On("Close").Once()

	newPublisher(conn, logger.NewNop()).Close()

	conn.AssertExpectations(t)
}

func TestPublisher_CloseAlreadyClosed(t *testing.T) {
	conn := new(MockConn)
	conn.On("IsClosed").Return(true).Once()

	newPublisher(conn, logger.NewNop()).Close()

	conn.AssertNotCalled(t, "Drain")
	conn.AssertExpectations(t)
}

func TestNATSHeaderCarrier(t *testing.T) {
	h := make(nats.Header)
	c := NATSHeaderCarrier(h)

	c.Set("traceparent", "00-abc-def-01")

	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Len(t, c.Keys(), 1)
}
