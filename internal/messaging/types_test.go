package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope("ord-1001", "payment.settled", map[string]string{"status": "paid"})
	require.NoError(t, err)

	_, err = uuid.Parse(env.EventID)
	assert.NoError(t, err)
	assert.Equal(t, "ord-1001", env.Key)
	assert.JSONEq(t, `{"status":"paid"}`, string(env.Payload))
	assert.False(t, env.Timestamp.IsZero())
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	broker := NewMockPublisher(ctrl)
	index := NewMockPublisher(ctrl)

	env := Envelope{EventID: "evt-1", Key: "ord-1001", Payload: json.RawMessage(`{}`)}
	brokerErr := errors.New("broker unreachable")

	// given
	broker.EXPECT().Publish(gomock.Any(), env).Return(brokerErr)
	index.EXPECT().Publish(gomock.Any(), env).Return(nil)

	// when
	err := Fanout{broker, index}.Publish(context.Background(), env)

	// then
	assert.ErrorIs(t, err, brokerErr)
}

func TestFanout_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockPublisher(ctrl)
	b := NewMockPublisher(ctrl)

	a.EXPECT().Close().Return(nil)
	b.EXPECT().Close().Return(nil)

	assert.NoError(t, Fanout{a, b}.Close())
}
