package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier define o contrato para alertar o time de vendas
type LeadNotifier interface {
	NotifyLeadEvent(payload LeadEventPayload) error
}

// EventLogRepository arquiva eventos processados (auditoria/relatórios)
type EventLogRepository interface {
	Insert(ctx context.Context, payload LeadEventPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
	EventLog EventLogRepository // opcional: nil desliga o arquivamento
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier, eventLog EventLogRepository) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		EventLog: eventLog,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			log.Printf("📥 [WORKER] Evento recebido do RabbitMQ")

			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.ProcessEvent(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar %s: %s", payload.Event, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) ProcessEvent(ctx context.Context, payload LeadEventPayload) error {
	if w.EventLog != nil {
		if err := w.EventLog.Insert(ctx, payload); err != nil {
			// Auditoria não pode segurar a notificação
			log.Printf("⚠️ [WORKER] Falha ao arquivar evento: %s", err)
		}
	}

	if w.Notifier == nil {
		return nil
	}

	switch payload.Event {
	case EventLeadCreated:
		log.Printf("🔔 [WORKER] Lead novo no pipeline: %s", payload.Name)
		return w.Notifier.NotifyLeadEvent(payload)

	case EventInstagramSync:
		log.Printf("📸 [WORKER] Instagram sync trouxe %d leads", payload.SyncedCount)
		return w.Notifier.NotifyLeadEvent(payload)

	case EventLeadUpdated, EventLeadDeleted, EventInteractionNew:
		// Só auditoria, sem alerta
		return nil

	default:
		log.Printf("⚠️ Evento desconhecido: %s. Apenas logando.", payload.Event)
		// ACK mesmo assim para não travar a fila com mensagem que não sabemos tratar
		return nil
	}
}
