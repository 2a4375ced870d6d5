package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"joinme/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocalSubscription names the subscription in locally built push envelopes.
const LocalSubscription = "projects/local/subscriptions/fanout-sub"

// ErrMalformedPushMessage is returned when a push body cannot be turned into a FanoutEvent.
var ErrMalformedPushMessage = errors.New("malformed push message")

// PushMessage is the JSON body Pub/Sub sends to push endpoints.
// The local publisher builds the same shape so the worker handles both.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every published message for filtering and tracing
func eventAttributes(event *service.FanoutEvent) map[string]string {
	attributes := map[string]string{
		"kind":     event.Kind,
		"event_id": event.EventID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// EncodePushMessage wraps the event in a push envelope
func EncodePushMessage(event *service.FanoutEvent, subscription string) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

// DecodePushMessage extracts the FanoutEvent from a push envelope
func DecodePushMessage(body []byte) (*PushMessage, *service.FanoutEvent, error) {
	var msg PushMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, nil, errors.Wrap(ErrMalformedPushMessage, err.Error())
	}
	if msg.Message.Data == "" {
		return nil, nil, errors.Wrap(ErrMalformedPushMessage, "empty data")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(ErrMalformedPushMessage, err.Error())
	}

	var event service.FanoutEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(ErrMalformedPushMessage, err.Error())
	}
	if event.Kind == "" || event.EventID == "" {
		return nil, nil, errors.Wrap(ErrMalformedPushMessage, "missing kind or event_id")
	}

	if event.RequestID == "" {
		event.RequestID = msg.Message.Attributes["request_id"]
	}

	return &msg, &event, nil
}
