package interfaces

import "context"

// IPrintQueue hands paid jobs to the print station.
type IPrintQueue interface {
	Enqueue(ctx context.Context, payload []byte) error
}
