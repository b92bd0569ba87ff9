package interfaces

import "context"

// IPlatformFeeResolver returns the platform fee percent applied to payouts.
// It never fails: a missing or unreadable setting resolves to the configured fallback.
type IPlatformFeeResolver interface {
	PlatformFeePercent(ctx context.Context) float64
}
