package common

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Exchange string

type Queue string

type BindingKey string

type MessageProducer interface {
	Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error
}

type MessageConsumer interface {
	Consume(queue Queue) (<-chan amqp.Delivery, error)
}

const (
	BlogExchange Exchange = "blog_exchange"
	UserExchange Exchange = "user_exchange"

	BlogEventsQueue Queue = "blog_events_queue"
	UserEventsQueue Queue = "user_events_queue"

	BlogCreatedKey BindingKey = "blog.created"
	BlogUpdatedKey BindingKey = "blog.updated"
	BlogLikedKey   BindingKey = "blog.liked"
	BlogDeletedKey BindingKey = "blog.deleted"
	UserCreatedKey BindingKey = "user.created"
)

type MessageBroker struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewMessageBroker(URI string) (*MessageBroker, error) {
	conn, ch, err := connectAMQP(URI)
	if err != nil {
		return nil, err
	}

	return &MessageBroker{
		conn: conn,
		ch:   ch,
	}, nil
}

// AMQPURI builds the broker URI from its parts.
func AMQPURI(user, password, host, port string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
}

func connectAMQP(URI string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(URI)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	return conn, ch, nil
}

// Close releases the channel before the connection it belongs to.
func (mb *MessageBroker) Close() error {
	return errors.Join(mb.ch.Close(), mb.conn.Close())
}

// SetupExchanges declares the blog and user topic exchanges and binds one durable
// queue to each so events are retained until a consumer reads them.
func SetupExchanges(mb *MessageBroker) error {
	bindings := []struct {
		exchange Exchange
		queue    Queue
		key      BindingKey
	}{
		{BlogExchange, BlogEventsQueue, "blog.*"},
		{UserExchange, UserEventsQueue, "user.*"},
	}

	for _, b := range bindings {
		err := mb.ch.ExchangeDeclare(string(b.exchange), "topic", true, false, false, false, nil)
		if err != nil {
			return err
		}

		_, err = mb.ch.QueueDeclare(string(b.queue), true, false, false, false, nil)
		if err != nil {
			return err
		}

		err = mb.ch.QueueBind(string(b.queue), string(b.key), string(b.exchange), false, nil)
		if err != nil {
			return err
		}
	}

	return nil
}

func (mb *MessageBroker) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	err := mb.ch.PublishWithContext(ctx, string(exchange), string(key), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        msg,
	})
	if err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}

	return nil
}

func (mb *MessageBroker) Consume(queue Queue) (<-chan amqp.Delivery, error) {
	msgs, err := mb.ch.Consume(string(queue), "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not consume message: %w", err)
	}

	return msgs, nil
}
