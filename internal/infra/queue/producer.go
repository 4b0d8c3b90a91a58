package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventLeadCreated    = "lead.created"
	EventLeadUpdated    = "lead.updated"
	EventLeadDeleted    = "lead.deleted"
	EventInstagramSync  = "instagram.synced"
	EventInteractionNew = "interaction.created"
)

// LeadEventPayload descreve um evento do ciclo de vida de um lead, publicado
// após a confirmação do backend (nunca especulativo).
type LeadEventPayload struct {
	Event   string `json:"event"`
	LeadID  int    `json:"lead_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status,omitempty"`
	Source  string `json:"source,omitempty"`

	// Só para instagram.synced
	SyncedCount int `json:"synced_count,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

type LeadEventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
