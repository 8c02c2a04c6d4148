package events

import (
	"context"
	"encoding/json"
	"fmt"

	"cotizador_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/rs/zerolog/log"
)

// EventBridgePublisher emits quotation lifecycle events on an EventBridge bus.
type EventBridgePublisher struct {
	client  *eventbridge.Client
	busName string
}

var _ interfaces.IEventPublisher = (*EventBridgePublisher)(nil)

func NewEventBridgePublisher(client *eventbridge.Client, busName string) *EventBridgePublisher {
	return &EventBridgePublisher{client: client, busName: busName}
}

func (p *EventBridgePublisher) Publish(ctx context.Context, detailType string, detail map[string]any) error {
	body, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshaling %s detail: %w", detailType, err)
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				Source:       aws.String(interfaces.OutboundSource),
				DetailType:   aws.String(detailType),
				Detail:       aws.String(string(body)),
				EventBusName: aws.String(p.busName),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publishing %s: %w", detailType, err)
	}
	if out.FailedEntryCount > 0 {
		entry := out.Entries[0]
		return fmt.Errorf("publishing %s: entry rejected: %s", detailType, aws.ToString(entry.ErrorCode))
	}

	log.Debug().Str("detail_type", detailType).Str("bus", p.busName).Msg("event published")
	return nil
}
