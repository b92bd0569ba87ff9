package interfaces

import "context"

// ISettingsRepository reads and writes marketplace settings rows.

type ISettingsRepository interface {
	// GetNumber returns found=false when the key has no row.
	GetNumber(ctx context.Context, key string) (value float64, found bool, err error)
	PutNumber(ctx context.Context, key string, value float64) error
}
