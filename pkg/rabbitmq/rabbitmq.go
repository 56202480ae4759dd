package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// ContactQueue receives one event per stored contact message.
const ContactQueue = "contact_messages"

// EventMessageCreated is the type of the event published for new messages.
const EventMessageCreated = "message.created"

// MessageEvent is the JSON body published to ContactQueue.
type MessageEvent struct {
	Type      string    `json:"type"`
	MessageID string    `json:"messageId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares ContactQueue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declare(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Printf("RabbitMQ client connected and %s declared.", ContactQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declare(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(
		ContactQueue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", ContactQueue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishMessageCreated publishes a persistent JSON event to ContactQueue.
func (c *Client) PublishMessageCreated(event MessageEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	if event.Type == "" {
		event.Type = EventMessageCreated
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message event to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",           // default exchange
		ContactQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// ConsumeMessageEvents delivers every event on ContactQueue to handler in a
// background goroutine. A nil error acks the delivery, anything else nacks
// and requeues it. Bodies that do not decode are dropped.
func (c *Client) ConsumeMessageEvents(handler func(event MessageEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		ContactQueue, // queue
		"",           // consumer tag
		false,        // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			handleDelivery(msg, handler)
		}
	}()

	return nil
}

// acknowledger is the subset of amqp.Delivery used to settle a delivery.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(msg amqp.Delivery, handler func(event MessageEvent) error) {
	settle(&msg, msg.Body, msg.Redelivered, handler)
}

// settle requeues a failed event once. A delivery that already came back
// is dropped so a failing handler cannot spin on it.
func settle(ack acknowledger, body []byte, redelivered bool, handler func(event MessageEvent) error) {
	var event MessageEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Printf("Dropping undecodable message event: %v", err)
		if nackErr := ack.Nack(false, false); nackErr != nil {
			log.Printf("Error nacking message: %v", nackErr)
		}
		return
	}

	if err := handler(event); err != nil {
		requeue := !redelivered
		log.Printf("Error processing message event %s (requeue=%t): %v", event.MessageID, requeue, err)
		if nackErr := ack.Nack(false, requeue); nackErr != nil {
			log.Printf("Error nacking message: %v", nackErr)
		}
		return
	}

	if ackErr := ack.Ack(false); ackErr != nil {
		log.Printf("Error acking message %s: %v", event.MessageID, ackErr)
	}
}
