package settings

import (
	"context"
	"errors"
)

// KeyScanRate holds the global default piece rate applied to employees with
// no per-employee override. It is read at calculation time, never cached
// across requests.
const KeyScanRate = "scan_rate"

var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository is a plain key-value store backed by the settings table.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
