package sightings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"bird-sightings/internal/domain/apperr"
	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/platform/logger"
	"bird-sightings/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, m *metrics.Metrics) {
	r.Route("/api/sighting", func(sr chi.Router) {
		sr.Post("/", addSightingHandler(svc, log, m))
		sr.Get("/", listSightingsHandler(svc, log, m))

		// GET con body: el filtro es el bird completo.
		sr.Get("/bird", getSightingsByBirdHandler(svc, log, m))
		sr.Get("/location/{location}", getSightingsByLocationHandler(svc, log, m))
		sr.Get("/date-range", getSightingsByDateRangeHandler(svc, log, m))

		sr.Delete("/{id}", deleteSightingHandler(svc, log, m))
	})
}

// SightingPayload es el esquema JSON de un sighting.
type SightingPayload struct {
	ID       string            `json:"id,omitempty" example:"0b8f3c1e-6d0a-4c4e-9d7a-2f1b5e9a7c11"`
	Bird     birds.BirdPayload `json:"bird"`
	Location string            `json:"location" example:"Central Park"`
	Date     string            `json:"date" example:"2021-07-01"` // YYYY-MM-DD
}

type errorResponse struct {
	Message string `json:"message"`
}

// addSightingHandler godoc
// @Summary Registrar un sighting
// @Description El bird debe existir (se busca por bird.name). El bird guardado reemplaza al enviado.
// @Tags sightings
// @Accept json
// @Produce json
// @Param payload body SightingPayload true "Sighting (id se ignora)"
// @Success 201 {object} SightingPayload
// @Failure 400 {object} birds.ErrorResponse
// @Failure 404 {object} birds.ErrorResponse "Bird not found. Cannot add sighting."
// @Router /api/sighting [post]
func addSightingHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SightingPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}

		in, err := fromPayload(req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			return
		}

		saved, err := svc.AddSighting(r.Context(), in)
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}

		m.IncSightingsCreated()
		writeJSON(w, http.StatusCreated, ToPayload(saved))
	}
}

// listSightingsHandler godoc
// @Summary Listar sightings
// @Tags sightings
// @Produce json
// @Success 200 {array} SightingPayload
// @Router /api/sighting [get]
func listSightingsHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAllSightings(r.Context())
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// getSightingsByBirdHandler godoc
// @Summary Sightings de un bird
// @Description El bird va en el body. Se compara el snapshot completo (name, color, weight, height).
// @Tags sightings
// @Accept json
// @Produce json
// @Param payload body birds.BirdPayload true "Bird"
// @Success 200 {array} SightingPayload
// @Failure 404 {object} birds.ErrorResponse
// @Router /api/sighting/bird [get]
func getSightingsByBirdHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req birds.BirdPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
			return
		}

		items, err := svc.GetSightingsByBird(r.Context(), birds.FromPayload(req))
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// getSightingsByLocationHandler godoc
// @Summary Sightings por ubicación
// @Tags sightings
// @Produce json
// @Param location path string true "Ubicación exacta"
// @Success 200 {array} SightingPayload
// @Failure 404 {object} birds.ErrorResponse
// @Router /api/sighting/location/{location} [get]
func getSightingsByLocationHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetSightingsByLocation(r.Context(), pathParam(r, "location"))
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// getSightingsByDateRangeHandler godoc
// @Summary Sightings en un rango de fechas
// @Description Rango inclusivo en ambos extremos.
// @Tags sightings
// @Produce json
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {array} SightingPayload
// @Failure 400 {object} birds.ErrorResponse
// @Failure 404 {object} birds.ErrorResponse
// @Router /api/sighting/date-range [get]
func getSightingsByDateRangeHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		start, err := queryDate(q, "startDate")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			return
		}
		end, err := queryDate(q, "endDate")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			return
		}

		items, err := svc.GetSightingsByDateBetween(r.Context(), start, end)
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// deleteSightingHandler godoc
// @Summary Borrar sighting
// @Description Idempotente.
// @Tags sightings
// @Param id path string true "Sighting ID"
// @Success 200
// @Router /api/sighting/{id} [delete]
func deleteSightingHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteSighting(r.Context(), pathParam(r, "id")); err != nil {
			writeError(w, r, err, log, m)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, log logger.Logger, m *metrics.Metrics) {
	var nf *apperr.NotFoundError
	switch {
	case errors.As(err, &nf):
		m.IncNotFound("sighting")
		writeJSON(w, http.StatusNotFound, errorResponse{Message: nf.Message})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		log.Error("sighting request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func queryDate(q url.Values, key string) (Date, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return Date{}, errors.New(key + " is required")
	}
	d, err := ParseDate(raw)
	if err != nil {
		return Date{}, errors.New(key + ": " + err.Error())
	}
	return d, nil
}

// fromPayload sólo falla por formato de fecha; los campos obligatorios
// los valida el servicio. El ID siempre lo genera el store.
func fromPayload(p SightingPayload) (Sighting, error) {
	s := Sighting{
		Bird:     birds.FromPayload(p.Bird),
		Location: p.Location,
	}
	if p.Date != "" {
		d, err := ParseDate(p.Date)
		if err != nil {
			return Sighting{}, err
		}
		s.Date = d
	}
	return s, nil
}

func ToPayload(s Sighting) SightingPayload {
	return SightingPayload{
		ID:       s.ID,
		Bird:     birds.ToPayload(s.Bird),
		Location: s.Location,
		Date:     s.Date.String(),
	}
}

func toPayloads(items []Sighting) []SightingPayload {
	out := make([]SightingPayload, 0, len(items))
	for _, s := range items {
		out = append(out, ToPayload(s))
	}
	return out
}

func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
