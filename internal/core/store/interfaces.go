package store

import "context"

// KV is the persistence capability the store writes through.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// BatchKV is implemented by backends that can write several keys at once.
// Replace uses it so an import lands in a single transaction.
type BatchKV interface {
	KV
	SaveAll(ctx context.Context, values map[string][]byte) error
}

// Storage keys.
const (
	KeySubjects   = "zen_subjects"
	KeyLogs       = "zen_logs"
	KeyLastBackup = "zen_last_backup"
)
