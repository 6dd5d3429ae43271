package station

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"eprinter/internal/domain/entities"
	"eprinter/internal/usecase/interfaces"
)

// Consumer is the station's view of the print queue.
type Consumer interface {
	Dequeue(ctx context.Context, consumer string, timeout time.Duration) (msgID string, payload []byte, err error)
	Ack(ctx context.Context, msgID string) error
}

type jobMessage struct {
	JobID string `json:"job_id"`
}

// Worker consumes paid jobs from the print queue and moves them to
// queued, which is where the admin queue view picks them up. Further
// progression (printing, ready) is driven by the operator.

type Worker struct {
	queue        Consumer
	jobs         interfaces.IPrintJobRepository
	consumerName string
	pollInterval time.Duration
}

func NewWorker(queue Consumer, jobs interfaces.IPrintJobRepository, consumerName string, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Worker{
		queue:        queue,
		jobs:         jobs,
		consumerName: consumerName,
		pollInterval: pollInterval,
	}
}

// Run consumes until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	log.Info().Str("consumer", w.consumerName).Msg("print station worker started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("consumer", w.consumerName).Msg("print station worker stopped")
			return
		default:
		}

		msgID, payload, err := w.queue.Dequeue(ctx, w.consumerName, w.pollInterval)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Error().Err(err).Msg("print queue read failed")
			time.Sleep(w.pollInterval)
			continue
		}
		if msgID == "" {
			continue
		}

		w.handle(ctx, msgID, payload)
	}
}

func (w *Worker) handle(ctx context.Context, msgID string, payload []byte) {
	var msg jobMessage
	if err := json.Unmarshal(payload, &msg); err != nil || msg.JobID == "" {
		// Unparseable entries are acked so they do not wedge the group.
		log.Warn().Err(err).Str("msg_id", msgID).Msg("discarding malformed queue message")
		w.ack(ctx, msgID)
		return
	}

	job, err := w.jobs.TransitionStatus(ctx, msg.JobID, entities.PrintJobStatusPaid, entities.PrintJobStatusQueued)
	if err != nil {
		// Left unacked: the group redelivers and the transition is retried.
		log.Error().Err(err).Str("job_id", msg.JobID).Msg("failed to queue paid job")
		return
	}
	if job.ID == "" {
		// Already moved on, nothing to do.
		log.Debug().Str("job_id", msg.JobID).Msg("job no longer in paid status")
	} else {
		log.Info().Str("job_id", job.ID).Msg("job queued for printing")
	}
	w.ack(ctx, msgID)
}

func (w *Worker) ack(ctx context.Context, msgID string) {
	if err := w.queue.Ack(ctx, msgID); err != nil {
		log.Warn().Err(err).Str("msg_id", msgID).Msg("failed to ack queue message")
	}
}
