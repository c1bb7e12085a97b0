package interfaces

import "context"

// ISequenciaRepository allocates the sequential display numbers shown on
// quotes, work orders and ledger entries. Allocation must be atomic: two
// concurrent requests never observe the same value.

type ISequenciaRepository interface {
	Proxima(ctx context.Context, nome string) (int64, error)
}
