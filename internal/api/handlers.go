package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/user/expose-extractor/internal/domain"
	"github.com/user/expose-extractor/internal/portal"
)

const maxRequestBody = 1 << 20

// Messages returned to the frontend.
const (
	msgInvalidBody    = "Ungültiger Request-Body"
	msgURLRequired    = "URL ist erforderlich"
	msgInvalidURL     = "Ungültige URL"
	msgPriceNotFound  = "Kaufpreis konnte nicht extrahiert werden. Bitte überprüfen Sie die URL."
	msgFetchFailed    = "Fehler beim Extrahieren der Daten. Die Website könnte nicht erreichbar sein oder Zugriff verweigern."
	msgInternalError  = "Fehler beim Extrahieren der Immobiliendaten"
	msgHealthy        = "Backend API läuft"
	unsupportedPrefix = "Diese Website wird noch nicht unterstützt. Unterstützte Websites: "
)

func (s *Server) handleExtractRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.ExtractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		s.respondWithError(w, http.StatusBadRequest, msgURLRequired)
		return
	}

	data, err := s.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		status, message := s.classify(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("extraction failed", zap.String("url", req.URL), zap.Error(err))
		}
		s.respondWithError(w, status, message)
		return
	}

	s.respondWithJSON(w, http.StatusOK, data)
}

// classify maps an extraction error to a status code and a client-safe message.
func (s *Server) classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, msgInvalidURL
	case errors.Is(err, domain.ErrUnsupportedSite):
		return http.StatusBadRequest, unsupportedPrefix + strings.Join(portal.Names(), ", ")
	case errors.Is(err, domain.ErrPriceNotFound):
		return http.StatusUnprocessableEntity, msgPriceNotFound
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusInternalServerError, msgFetchFailed
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, domain.HealthResponse{Status: "ok", Message: msgHealthy})
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		code = http.StatusInternalServerError
		response = []byte(`{"error":"` + msgInternalError + `"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
