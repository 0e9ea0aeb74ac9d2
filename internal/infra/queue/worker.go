package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderSender é o contrato do envio de lembrete (hoje, e-mail via SMTP).
type ReminderSender interface {
	SendFollowUpReminder(payload FollowUpPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
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
			var payload FollowUpPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Lembrete de follow-up do lead %s para %s", payload.LeadID, payload.EmployeeEmail)

			if err := w.Sender.SendFollowUpReminder(payload); err != nil {
				log.Printf("❌ [WORKER] Erro no envio do lembrete: %s", err)
				d.Nack(false, false) // Vai pra DLQ via DLX
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
