// Package kafka consumes build-finished events published by a build host to a
// Kafka (or Redpanda) topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
)

// BuildMessage is the JSON payload of one build event.
type BuildMessage struct {
	Project        string              `json:"project"`
	Number         int                 `json:"number"`
	Result         string              `json:"result"`
	PreviousResult string              `json:"previousResult"`
	URL            string              `json:"url"`
	LogTail        []string            `json:"logTail"`
	Policy         *model.PolicyConfig `json:"policy,omitempty"`
}

// Consumer reads build events from a topic and hands them to a handler.
type Consumer struct {
	client       *kgo.Client
	policies     ports.PolicyResolver
	handler      ports.BuildEventHandler
	logger       ports.Logger
	logTailLines int
}

// NewConsumer creates a consumer-group client for topic.
func NewConsumer(brokers []string, topic, groupID string, policies ports.PolicyResolver, handler ports.BuildEventHandler, logTailLines int, logger ports.Logger) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	return &Consumer{
		client:       client,
		policies:     policies,
		handler:      handler,
		logger:       logger,
		logTailLines: logTailLines,
	}, nil
}

// Run polls until ctx is done or the client is closed.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.client.Close()

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error(ctx, "kafka fetch error", "topic", topic, "partition", partition, "error", err)
		})

		fetches.EachRecord(func(record *kgo.Record) {
			event, err := DecodeEvent(record.Value, c.policies, c.logTailLines)
			if err != nil {
				c.logger.Warn(ctx, "dropping malformed build event", "topic", record.Topic, "offset", record.Offset, "error", err)
				return
			}
			c.handler.Perform(ctx, event)
		})
	}
}

// DecodeEvent parses a BuildMessage. When the message carries no policy, the
// project's configured policy is used.
func DecodeEvent(data []byte, policies ports.PolicyResolver, logTailLines int) (model.BuildEvent, error) {
	var msg BuildMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return model.BuildEvent{}, fmt.Errorf("decode build event: %w", err)
	}
	if msg.Project == "" {
		return model.BuildEvent{}, fmt.Errorf("decode build event: project is required")
	}

	logTail := msg.LogTail
	if logTailLines > 0 && len(logTail) > logTailLines {
		logTail = logTail[len(logTail)-logTailLines:]
	}

	event := model.BuildEvent{
		Outcome: model.BuildOutcome{
			Result:      model.ParseResult(msg.Result),
			ProjectName: msg.Project,
			BuildNumber: msg.Number,
			URL:         msg.URL,
			LogTail:     logTail,
		},
		PreviousResult: model.ParseResult(msg.PreviousResult),
	}

	switch {
	case msg.Policy != nil:
		event.Policy = *msg.Policy
	case policies != nil:
		event.Policy = policies.PolicyFor(msg.Project)
	}
	return event, nil
}
