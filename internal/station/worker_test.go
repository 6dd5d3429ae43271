package station

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"eprinter/internal/domain/entities"
	mock_interfaces "eprinter/internal/usecase/interfaces/mocks"
)

type fakeConsumer struct {
	messages []fakeMessage
	acked    []string
}

type fakeMessage struct {
	id      string
	payload []byte
}

func (f *fakeConsumer) Dequeue(ctx context.Context, consumer string, timeout time.Duration) (string, []byte, error) {
	if len(f.messages) == 0 {
		return "", nil, nil
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg.id, msg.payload, nil
}

func (f *fakeConsumer) Ack(ctx context.Context, msgID string) error {
	f.acked = append(f.acked, msgID)
	return nil
}

func TestWorker_Handle(t *testing.T) {
	t.Run("moves a paid job to queued and acks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIPrintJobRepository(ctrl)
		consumer := &fakeConsumer{}
		w := NewWorker(consumer, jobs, "station-test", time.Millisecond)

		jobs.EXPECT().
			TransitionStatus(gomock.Any(), "job-1", entities.PrintJobStatusPaid, entities.PrintJobStatusQueued).
			Return(entities.PrintJob{ID: "job-1", Status: entities.PrintJobStatusQueued}, nil)

		w.handle(context.Background(), "msg-1", []byte(`{"job_id":"job-1"}`))

		if len(consumer.acked) != 1 || consumer.acked[0] != "msg-1" {
			t.Fatalf("expected msg-1 acked, got %v", consumer.acked)
		}
	})

	t.Run("acks a job that already left paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIPrintJobRepository(ctrl)
		consumer := &fakeConsumer{}
		w := NewWorker(consumer, jobs, "station-test", time.Millisecond)

		jobs.EXPECT().
			TransitionStatus(gomock.Any(), "job-1", entities.PrintJobStatusPaid, entities.PrintJobStatusQueued).
			Return(entities.PrintJob{}, nil)

		w.handle(context.Background(), "msg-1", []byte(`{"job_id":"job-1"}`))

		if len(consumer.acked) != 1 {
			t.Fatalf("expected ack, got %v", consumer.acked)
		}
	})

	t.Run("discards malformed payloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIPrintJobRepository(ctrl)
		consumer := &fakeConsumer{}
		w := NewWorker(consumer, jobs, "station-test", time.Millisecond)

		w.handle(context.Background(), "msg-1", []byte("not json"))

		if len(consumer.acked) != 1 {
			t.Fatalf("malformed message should be acked, got %v", consumer.acked)
		}
	})

	t.Run("leaves the message for redelivery on repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIPrintJobRepository(ctrl)
		consumer := &fakeConsumer{}
		w := NewWorker(consumer, jobs, "station-test", time.Millisecond)

		jobs.EXPECT().
			TransitionStatus(gomock.Any(), "job-1", entities.PrintJobStatusPaid, entities.PrintJobStatusQueued).
			Return(entities.PrintJob{}, context.DeadlineExceeded)

		w.handle(context.Background(), "msg-1", []byte(`{"job_id":"job-1"}`))

		if len(consumer.acked) != 0 {
			t.Fatalf("message should not be acked on error, got %v", consumer.acked)
		}
	})
}
