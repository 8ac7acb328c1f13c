package birds

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"bird-sightings/internal/domain/apperr"
	"bird-sightings/internal/platform/logger"
	"bird-sightings/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, m *metrics.Metrics) {
	r.Route("/api/bird", func(br chi.Router) {
		br.Post("/", addBirdHandler(svc, log, m))
		br.Get("/", listBirdsHandler(svc, log, m))
		br.Get("/name/{name}", getBirdByNameHandler(svc, log, m))
		br.Get("/color/{color}", getBirdsByColorHandler(svc, log, m))

		// Idempotente: 200 aunque no exista.
		br.Delete("/{name}", deleteBirdHandler(svc, log, m))
	})
}

// BirdPayload es el esquema JSON de un bird, tanto en requests como en responses.
type BirdPayload struct {
	Name   string `json:"name" example:"Sparrow"`
	Color  string `json:"color" example:"Brown"`
	Weight string `json:"weight" example:"3.5"`
	Height string `json:"height" example:"0.5"`
}

// ErrorResponse es el cuerpo de todos los errores de la API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// addBirdHandler godoc
// @Summary Crear o sobreescribir un bird
// @Description Guarda el bird indicado. Si ya existe uno con el mismo name, se reemplaza.
// @Tags birds
// @Accept json
// @Produce json
// @Param payload body BirdPayload true "Bird; name es obligatorio"
// @Success 200 {object} BirdPayload
// @Failure 400 {object} ErrorResponse "invalid json / name vacío"
// @Router /api/bird [post]
func addBirdHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BirdPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
			return
		}

		b, err := svc.AddBird(r.Context(), FromPayload(req))
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}

		m.IncBirdsSaved()
		writeJSON(w, http.StatusOK, ToPayload(b))
	}
}

// listBirdsHandler godoc
// @Summary Listar birds
// @Tags birds
// @Produce json
// @Success 200 {array} BirdPayload
// @Failure 500 {object} ErrorResponse
// @Router /api/bird [get]
func listBirdsHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAllBirds(r.Context())
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// getBirdByNameHandler godoc
// @Summary Buscar bird por nombre
// @Tags birds
// @Produce json
// @Param name path string true "Nombre del bird"
// @Success 200 {object} BirdPayload
// @Failure 404 {object} ErrorResponse
// @Router /api/bird/name/{name} [get]
func getBirdByNameHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.FindBirdByName(r.Context(), pathParam(r, "name"))
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, ToPayload(b))
	}
}

// getBirdsByColorHandler godoc
// @Summary Buscar birds por color
// @Tags birds
// @Produce json
// @Param color path string true "Color exacto"
// @Success 200 {array} BirdPayload
// @Failure 404 {object} ErrorResponse
// @Router /api/bird/color/{color} [get]
func getBirdsByColorHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.FindBirdByColor(r.Context(), pathParam(r, "color"))
		if err != nil {
			writeError(w, r, err, log, m)
			return
		}
		writeJSON(w, http.StatusOK, toPayloads(items))
	}
}

// deleteBirdHandler godoc
// @Summary Borrar bird por nombre
// @Description Idempotente: responde 200 aunque el bird no exista.
// @Tags birds
// @Param name path string true "Nombre del bird"
// @Success 200
// @Router /api/bird/{name} [delete]
func deleteBirdHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteBird(r.Context(), pathParam(r, "name")); err != nil {
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
		m.IncNotFound("bird")
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: nf.Message})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		log.Error("bird request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		})
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
	}
}

func FromPayload(p BirdPayload) Bird {
	return Bird{
		Name:   p.Name,
		Color:  p.Color,
		Weight: p.Weight,
		Height: p.Height,
	}
}

func ToPayload(b Bird) BirdPayload {
	return BirdPayload{
		Name:   b.Name,
		Color:  b.Color,
		Weight: b.Weight,
		Height: b.Height,
	}
}

func toPayloads(items []Bird) []BirdPayload {
	out := make([]BirdPayload, 0, len(items))
	for _, b := range items {
		out = append(out, ToPayload(b))
	}
	return out
}

// pathParam devuelve el parámetro ya decodificado.
// chi deja el valor escapado cuando el request trae RawPath (p.ej. "%2F").
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
