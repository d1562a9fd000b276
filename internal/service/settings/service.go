package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshalp4/scantrack-pro/internal/domain/employee"
	"github.com/Harshalp4/scantrack-pro/internal/domain/scope"
	"github.com/Harshalp4/scantrack-pro/internal/domain/settings"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type SettingsService interface {
	GetScanRate(ctx context.Context) (settings.ScanRateResponse, error)
	SetScanRate(ctx context.Context, req settings.ScanRateRequest) (settings.ScanRateResponse, error)
}

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func identityFromContext(ctx context.Context) (scope.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return scope.Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return scope.FromClaims(claims)
}

// GetScanRate implements SettingsService. A rate that was never configured
// reads back as zero rather than an error so callers can render a form.
func (s *SettingsServiceImpl) GetScanRate(ctx context.Context) (settings.ScanRateResponse, error) {
	raw, err := s.settingsRepo.Get(ctx, settings.KeyScanRate)
	if err != nil {
		if errors.Is(err, settings.ErrSettingNotFound) {
			return settings.ScanRateResponse{ScanRate: decimal.Zero}, nil
		}
		return settings.ScanRateResponse{}, err
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return settings.ScanRateResponse{ScanRate: decimal.Zero}, nil
	}
	return settings.ScanRateResponse{ScanRate: rate}, nil
}

// SetScanRate implements SettingsService.
func (s *SettingsServiceImpl) SetScanRate(ctx context.Context, req settings.ScanRateRequest) (settings.ScanRateResponse, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return settings.ScanRateResponse{}, employee.ErrUnauthorized
	}
	if identity.Role != scope.RoleSuperAdmin {
		return settings.ScanRateResponse{}, employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return settings.ScanRateResponse{}, err
	}

	rate, err := decimal.NewFromString(req.ScanRate)
	if err != nil {
		return settings.ScanRateResponse{}, validator.ValidationErrors{
			{Field: "scan_rate", Message: "scan_rate must be a non-negative decimal"},
		}
	}

	if err := s.settingsRepo.Set(ctx, settings.KeyScanRate, rate.String()); err != nil {
		return settings.ScanRateResponse{}, fmt.Errorf("failed to store scan rate: %w", err)
	}
	return settings.ScanRateResponse{ScanRate: rate}, nil
}
