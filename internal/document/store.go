package document

import "context"

// Store is the durable name -> content mapping a Session saves into.
// Set is an upsert; the last write wins. List order is unspecified.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, content string) error
	List(ctx context.Context) ([]string, error)
}
