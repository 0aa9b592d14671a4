package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/speedo/pkg/colors"
	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/pipeline"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePalettes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  colors.DefaultRamp,
		"palettes": colors.Names(),
	})
}

// handleGauge renders GET /v1/gauge.{format}.
func (s *Server) handleGauge(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{chi.URLParam(r, "format")}
	s.render(w, r, opts)
}

// handleRender renders POST /v1/render. Only the first requested format
// is returned.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeStatus(w, http.StatusRequestEntityTooLarge, string(errs.ErrCodeInvalidInput), "request body too large")
			return
		}
		s.writeError(w, r, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if len(opts.Formats) > 1 {
		opts.Formats = opts.Formats[:1]
	}
	s.render(w, r, opts)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	art := result.Artifacts[format]
	etag := art.ETag()

	h := w.Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", "public, max-age=86400")
	if result.CacheInfo.RenderHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", contentType(art))
	h.Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

func contentType(art *sink.Artifact) string {
	if art.Format == sink.FormatSVG {
		return art.MediaType + "; charset=utf-8"
	}
	return art.MediaType
}

// optionsFromQuery parses the render query parameters. Absent parameters
// stay zero so pipeline defaults apply.
func optionsFromQuery(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Title:       q.Get("title"),
		Unit:        q.Get("unit"),
		Color:       q.Get("color"),
		Palette:     q.Get("palette"),
		Theme:       q.Get("theme"),
		Orientation: q.Get("orientation"),
		Clamp:       q.Get("clamp"),
	}

	var err error
	if v := q.Get("value"); v != "" {
		if opts.Value, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errs.New(errs.ErrCodeInvalidInput, "value must be a number, got %q", v)
		}
	}
	if opts.Max, err = intParam(q, "max"); err != nil {
		return opts, err
	}
	if opts.Size, err = intParam(q, "size"); err != nil {
		return opts, err
	}
	if opts.Segments, err = intParam(q, "segments"); err != nil {
		return opts, err
	}
	if opts.Gradient, err = boolParam(q, "gradient"); err != nil {
		return opts, err
	}
	if opts.Refresh, err = boolParam(q, "refresh"); err != nil {
		return opts, err
	}
	return opts, nil
}

func intParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func boolParam(q url.Values, name string) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errs.New(errs.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}
