package kafka

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/white/lead-management/config"
	"go.uber.org/zap"
)

// Producer wraps a Kafka producer
type Producer struct {
	producer *kafka.Producer
	config   config.KafkaConfig
	logger   *zap.Logger
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg config.KafkaConfig, logger *zap.Logger) (*Producer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	configMap := &kafka.ConfigMap{
		"bootstrap.servers":  strings.Join(cfg.Brokers, ","),
		"client.id":          cfg.ClientID,
		"acks":               "all",
		"message.timeout.ms": cfg.ProducerTimeout,
	}

	if cfg.Username != "" && cfg.Password != "" {
		saslMechanism := strings.ToUpper(cfg.SASLMechanism)

		_ = configMap.SetKey("sasl.mechanism", saslMechanism)
		_ = configMap.SetKey("sasl.username", cfg.Username)
		_ = configMap.SetKey("sasl.password", cfg.Password)

		if cfg.SSL {
			_ = configMap.SetKey("security.protocol", "SASL_SSL")
		} else {
			_ = configMap.SetKey("security.protocol", "SASL_PLAINTEXT")
		}
	}

	producer, err := kafka.NewProducer(configMap)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	// Delivery reports for fire-and-forget messages
	go func() {
		for e := range producer.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					topic := ""
					if ev.TopicPartition.Topic != nil {
						topic = *ev.TopicPartition.Topic
					}
					logger.Warn("kafka delivery failed",
						zap.String("topic", topic),
						zap.Error(ev.TopicPartition.Error))
				}
			case kafka.Error:
				logger.Warn("kafka client error", zap.Error(ev))
			}
		}
	}()

	return &Producer{
		producer: producer,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Produce sends a message to a Kafka topic (async)
func (p *Producer) Produce(topic string, key, value []byte) error {
	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   key,
		Value: value,
	}

	return p.producer.Produce(message, nil)
}

// PublishJSON marshals data to JSON and publishes it under key
func (p *Producer) PublishJSON(topic, key string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	var k []byte
	if key != "" {
		k = []byte(key)
	}
	return p.Produce(topic, k, jsonData)
}

// Close flushes outstanding messages and closes the Kafka producer
func (p *Producer) Close() {
	if p.producer != nil {
		remaining := p.producer.Flush(5000)
		if remaining > 0 {
			p.logger.Warn("kafka producer closed with undelivered messages", zap.Int("remaining", remaining))
		}
		p.producer.Close()
	}
}
