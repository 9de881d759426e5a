package handlers

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pysugar/kreuzungen-auth/internal/feature"
	"github.com/pysugar/kreuzungen-auth/internal/logging"
)

// MaxFeatureBytes caps the size of a submitted feature.
const MaxFeatureBytes = 10 << 20

type saveFeatureResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SaveFeatureHandler stores the raw request body under a new friendly id.
// featureURL builds the frontend link returned alongside the id.
func SaveFeatureHandler(features FeatureStore, featureURL func(id string) string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context(), logger)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxFeatureBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "Feature too large.")
				return
			}
			log.Error("failed to read feature body", zap.Error(err))
			writeError(w, http.StatusBadRequest, "Could not read feature.")
			return
		}
		if len(body) == 0 {
			log.Error("feature body not provided")
			writeError(w, http.StatusBadRequest, "Feature not provided.")
			return
		}

		id, err := features.Save(r.Context(), body)
		if err != nil {
			log.Error("failed to save feature", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Error saving feature.")
			return
		}

		log.Info("feature saved", zap.String("feature_id", id))
		writeJSON(w, http.StatusOK, saveFeatureResponse{ID: id, URL: featureURL(id)})
	}
}

// GetFeatureHandler returns the bytes stored under query parameter "id".
func GetFeatureHandler(features FeatureStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context(), logger)

		id := r.URL.Query().Get("id")
		if id == "" {
			log.Error("feature id not provided")
			writeError(w, http.StatusBadRequest, "Feature ID not provided.")
			return
		}

		data, err := features.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, feature.ErrNotFound) {
				log.Warn("feature not found", zap.String("feature_id", id))
				writeError(w, http.StatusNotFound, "Feature not found")
				return
			}
			log.Error("failed to load feature", zap.String("feature_id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Error loading feature.")
			return
		}

		log.Info("feature retrieved", zap.String("feature_id", id))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
