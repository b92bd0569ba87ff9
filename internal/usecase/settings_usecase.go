package usecase

import (
	"context"
	"math"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SettingPlatformFeePercent is the settings row holding the platform fee.
const SettingPlatformFeePercent = "platform_fee_percent"

// Fee sources.
const (
	FeeSourceSettings = "settings"
	FeeSourceDefault  = "default"
)

type ISettingsUseCase interface {
	GetPlatformFee(ctx context.Context, actor entities.Actor) (PlatformFee, error)
	SetPlatformFee(ctx context.Context, actor entities.Actor, percent float64) (PlatformFee, error)
}

type PlatformFee struct {
	Percent float64 `json:"fee_percent"`
	Source  string  `json:"source"`
}

// SettingsUseCase owns the platform fee setting and is the single fee resolver used by payouts.
type SettingsUseCase struct {
	repo     interfaces.ISettingsRepository
	audit    interfaces.IAuditRecorder
	fallback float64
	log      *zap.Logger
}

var (
	_ ISettingsUseCase                = (*SettingsUseCase)(nil)
	_ interfaces.IPlatformFeeResolver = (*SettingsUseCase)(nil)
)

func NewSettingsUseCase(repo interfaces.ISettingsRepository, audit interfaces.IAuditRecorder, fallbackPercent float64, log *zap.Logger) *SettingsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if !validFeePercent(fallbackPercent) {
		fallbackPercent = entities.DefaultPlatformFeePercent
	}
	return &SettingsUseCase{
		repo:     repo,
		audit:    audit,
		fallback: fallbackPercent,
		log:      log.Named("settings.usecase"),
	}
}

func (u *SettingsUseCase) PlatformFeePercent(ctx context.Context) float64 {
	return u.resolve(ctx).Percent
}

func (u *SettingsUseCase) GetPlatformFee(ctx context.Context, actor entities.Actor) (PlatformFee, error) {
	if err := requireAdmin(actor); err != nil {
		return PlatformFee{}, err
	}
	return u.resolve(ctx), nil
}

func (u *SettingsUseCase) SetPlatformFee(ctx context.Context, actor entities.Actor, percent float64) (PlatformFee, error) {
	if err := requireAdmin(actor); err != nil {
		return PlatformFee{}, err
	}
	if !validFeePercent(percent) {
		return PlatformFee{}, ErrInvalidFeePercent
	}
	previous := u.resolve(ctx)
	if err := u.repo.PutNumber(ctx, SettingPlatformFeePercent, percent); err != nil {
		u.log.Error("set-platform-fee failed", zap.Float64("fee_percent", percent), zap.Error(err))
		return PlatformFee{}, err
	}
	u.log.Info("set-platform-fee success", zap.Float64("fee_percent", percent), zap.String("actor_id", actor.ID))

	if u.audit != nil {
		err := u.audit.Record(ctx, actor, entities.EventPlatformFeeUpdated, "", map[string]any{
			"fee_percent":      percent,
			"previous_percent": previous.Percent,
		})
		if err != nil {
			u.log.Warn("ledger append failed", zap.String("event", entities.EventPlatformFeeUpdated), zap.Error(err))
		}
	}
	return PlatformFee{Percent: percent, Source: FeeSourceSettings}, nil
}

func (u *SettingsUseCase) resolve(ctx context.Context) PlatformFee {
	value, found, err := u.repo.GetNumber(ctx, SettingPlatformFeePercent)
	switch {
	case err != nil:
		u.log.Warn("platform fee lookup failed, using fallback", zap.Float64("fallback", u.fallback), zap.Error(err))
	case !found:
	case !validFeePercent(value):
		u.log.Warn("stored platform fee out of range, using fallback", zap.Float64("stored", value))
	default:
		return PlatformFee{Percent: value, Source: FeeSourceSettings}
	}
	return PlatformFee{Percent: u.fallback, Source: FeeSourceDefault}
}

func validFeePercent(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p < 100
}
