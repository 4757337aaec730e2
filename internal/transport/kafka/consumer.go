package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-motorizado/internal/logx"
	"service-motorizado/internal/service/dispatch"
)

// HandleFunc processes a single dispatch.Event from Kafka
type HandleFunc func(context.Context, dispatch.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

const retryBackoff = time.Second

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	logger  logx.Logger
	handler HandleFunc
}

// NewConsumer creates a new Kafka consumer. It returns nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = false

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		logger:  logger.With(logx.String("topic", topic)),
		handler: h,
	}, nil
}

// Run consumes until ctx is done
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handle(sess.Context(), msg)
		sess.MarkMessage(msg, "")
	}
	return nil
}

// handle never fails: the store is in memory, so a redelivered message would not fare better.
func (h *groupHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) {
	log := h.c.logger.With(
		logx.Int("partition", int(msg.Partition)),
		logx.Any("offset", msg.Offset),
	)

	var dto EventDTO
	if err := json.Unmarshal(msg.Value, &dto); err != nil {
		log.Warn("kafka bad json", logx.Err(err))
		return
	}
	ev, err := ToDomain(dto)
	if err != nil {
		var perm PermanentError
		if errors.As(err, &perm) {
			log.Warn("kafka invalid event", logx.Err(err))
			return
		}
		log.Error("kafka decode failed", logx.Err(err))
		return
	}

	if err := h.c.handler(ctx, ev); err != nil {
		log.Error("kafka handle failed, skipping message",
			logx.String("status", ev.Status),
			logx.String("order_id", ev.Order.ID),
			logx.Err(err),
		)
	}
}
