package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// RecoveryRoutingKey is the routing key recovery messages are published with.
const RecoveryRoutingKey = "auth.recovery"

const publishTimeout = 5 * time.Second

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes recovery messages to a topic exchange for a mail
// worker to pick up.
type AMQPNotifier struct {
	conn     *amqp.Connection
	channel  publisher
	exchange string
	logger   logrus.FieldLogger
}

// DialAMQP connects to the broker and declares the exchange.
func DialAMQP(url, exchange string, logger logrus.FieldLogger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	n := newAMQPNotifier(channel, exchange, logger)
	n.conn = conn
	return n, nil
}

func newAMQPNotifier(channel publisher, exchange string, logger logrus.FieldLogger) *AMQPNotifier {
	return &AMQPNotifier{channel: channel, exchange: exchange, logger: logger}
}

func (n *AMQPNotifier) NotifyRecovery(ctx context.Context, msg RecoveryMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchange,
		RecoveryRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish recovery message: %w", err)
	}

	n.logger.WithField("userID", msg.UserID.String()).Info("Notify.recovery.published")
	return nil
}

// Close shuts the broker connection down.
func (n *AMQPNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
