package notification

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticastClient struct {
	batches [][]string
	err     error
}

func (f *fakeMulticastClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, message.Tokens)

	responses := make([]*messaging.SendResponse, 0, len(message.Tokens))
	for range message.Tokens {
		responses = append(responses, &messaging.SendResponse{Success: true, MessageID: "m"})
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFirebasePushSender_SendBatchNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("splits large token lists", func(t *testing.T) {
		client := &fakeMulticastClient{}
		sender := &firebasePushSender{client: client}

		tokens := make([]string, 0, 1201)
		for i := range 1201 {
			tokens = append(tokens, fmt.Sprintf("token-%d", i))
		}

		sent, failed, invalid, err := sender.SendBatchNotification(ctx, tokens, "title", "body", nil)
		require.NoError(t, err)
		assert.Equal(t, 1201, sent)
		assert.Zero(t, failed)
		assert.Empty(t, invalid)

		require.Len(t, client.batches, 3)
		assert.Len(t, client.batches[0], 500)
		assert.Len(t, client.batches[1], 500)
		assert.Len(t, client.batches[2], 201)
	})

	t.Run("empty tokens", func(t *testing.T) {
		client := &fakeMulticastClient{}
		sender := &firebasePushSender{client: client}

		sent, failed, _, err := sender.SendBatchNotification(ctx, nil, "title", "body", nil)
		require.NoError(t, err)
		assert.Zero(t, sent+failed)
		assert.Empty(t, client.batches)
	})

	t.Run("transport error", func(t *testing.T) {
		sender := &firebasePushSender{client: &fakeMulticastClient{err: errors.New("unavailable")}}

		_, _, _, err := sender.SendBatchNotification(ctx, []string{"token"}, "title", "body", nil)
		assert.Error(t, err)
	})
}
