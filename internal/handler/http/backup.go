package http

import (
	"net/http"

	"github.com/Harshalp4/scantrack-pro/internal/handler/http/response"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/backup"
)

type BackupHandler interface {
	Snapshot(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	exporter *backup.Exporter
}

func NewBackupHandler(exporter *backup.Exporter) BackupHandler {
	return &backupHandlerImpl{
		exporter: exporter,
	}
}

// Snapshot implements BackupHandler.
func (h *backupHandlerImpl) Snapshot(w http.ResponseWriter, r *http.Request) {
	ref, err := h.exporter.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Snapshot created", map[string]string{"ref": ref})
}
