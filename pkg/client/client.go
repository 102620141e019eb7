package client

import (
	"context"
	"time"

	"stlucia/pkg/kafka"
	kafka_config "stlucia/pkg/kafka/config"
	"stlucia/pkg/logger"
)

const disconnectTimeout = 10 * time.Second

// Client groups the long-lived connections shared by every handler.
type Client struct {
	Mongo *MongoClient
	Leads *kafka.Producer

	log *logger.Logger
}

func NewClient(log *logger.Logger) *Client {
	return &Client{log: log}
}

func (c *Client) SetMongo(mongoURI, database string, connTimeout time.Duration) {
	c.Mongo = NewMongoClient(c.log, mongoURI, database, connTimeout)
}

// SetLeadsProducer creates the booking lead producer. It is a no-op when no
// brokers are configured.
func (c *Client) SetLeadsProducer(cfg *kafka_config.Config, topic string) {
	if cfg == nil || !cfg.Enabled() {
		c.log.Info("Kafka brokers not configured, booking lead events disabled")
		return
	}

	producer, err := kafka.NewProducer(cfg, topic, c.log)
	if err != nil {
		c.log.Error("Failed to create booking lead producer, events disabled", "error", err, "topic", topic)
		return
	}

	c.Leads = producer
	c.log.Info("Booking lead producer initialized", "topic", topic, "brokers", cfg.Brokers)
}

func (c *Client) GracefulShutdown() {
	if c.Leads != nil {
		if err := c.Leads.Close(); err != nil {
			c.log.Error("Failed to close Kafka producer", "error", err)
		}
	}

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if err := c.Mongo.Disconnect(ctx); err != nil {
			c.log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}
}
