package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Harshalp4/scantrack-pro/internal/domain/settings"
	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	settingsservice "github.com/Harshalp4/scantrack-pro/internal/service/settings"
)

type SettingsHandler interface {
	GetScanRate(w http.ResponseWriter, r *http.Request)
	SetScanRate(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settingsservice.SettingsService
}

func NewSettingsHandler(settingsService settingsservice.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetScanRate implements SettingsHandler.
func (h *settingsHandlerImpl) GetScanRate(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetScanRate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetScanRate implements SettingsHandler.
func (h *settingsHandlerImpl) SetScanRate(w http.ResponseWriter, r *http.Request) {
	var req settings.ScanRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set scan rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.SetScanRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Scan rate updated", result)
}
