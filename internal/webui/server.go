package webui

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"goji.io"
	"goji.io/pat"

	"ned-enu-converter/internal/config"
	"ned-enu-converter/internal/frame"
	"ned-enu-converter/internal/raster"
)

//go:embed static
var staticFS embed.FS

const maxImageSize = 2048

// Server hosts the converter page and its API.
type Server struct {
	cfg      config.Config
	defaults Form
	logger   *zap.SugaredLogger
	metrics  *Metrics
	page     *template.Template
	mux      *goji.Mux
}

// pageData is used to render index.html.
type pageData struct {
	Form   Form
	View   View
	Frames []string
}

// NewServer builds the HTTP handlers for a resolved, validated config.
func NewServer(cfg config.Config, logger *zap.SugaredLogger, metrics *Metrics) (*Server, error) {
	page, err := template.ParseFS(staticFS, "static/index.html")
	if err != nil {
		return nil, err
	}

	in, out := cfg.Frames()
	s := &Server{
		cfg:      cfg,
		defaults: DefaultForm(in, out),
		logger:   logger,
		metrics:  metrics,
		page:     page.Lookup("index.html"),
		mux:      goji.NewMux(),
	}

	s.mux.Handle(pat.Get("/"), s.instrument("index", http.HandlerFunc(s.handleIndex)))
	s.mux.Handle(pat.Get("/api/orientation"), s.instrument("orientation", http.HandlerFunc(s.handleOrientation)))
	s.mux.Handle(pat.Get("/api/render"), s.instrument("render", http.HandlerFunc(s.handleRender)))
	s.mux.Handle(pat.Get("/metrics"), metrics.Handler())
	s.mux.HandleFunc(pat.Get("/healthz"), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	form := ParseForm(r.URL.Query(), s.defaults)
	data := pageData{Form: form, View: Recompute(form)}
	for _, f := range frame.All() {
		data.Frames = append(data.Frames, f.String())
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Errorw("couldn't execute web page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleOrientation(w http.ResponseWriter, r *http.Request) {
	form := ParseForm(r.URL.Query(), s.defaults)
	view := Recompute(form)
	s.metrics.Conversions.WithLabelValues(frameLabel(form.InputFrame), frameLabel(form.OutputFrame)).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		s.logger.Debugw("failed to write orientation", "error", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	format, err := raster.ParseFormat(query.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	size := s.cfg.RenderSize
	if query.Has("size") {
		size, err = cast.ToIntE(query.Get("size"))
		if err != nil || size <= 0 || size > maxImageSize {
			http.Error(w, "size must be between 1 and "+strconv.Itoa(maxImageSize), http.StatusBadRequest)
			return
		}
		if size*s.cfg.Supersample > config.MaxRenderExtent {
			http.Error(w, "size times supersample must not exceed "+strconv.Itoa(config.MaxRenderExtent), http.StatusBadRequest)
			return
		}
	}

	form := ParseForm(query, s.defaults)
	view := Recompute(form)

	opts := raster.Options{Size: size, Supersample: s.cfg.Supersample}
	if out, err := frame.Parse(form.OutputFrame); err == nil {
		opts.Labels = out.AxisNames()
		opts.ZUp = out == frame.ENU
	}
	img := raster.RenderAxes(view.Output, opts)

	var buf bytes.Buffer
	if err := raster.Encode(&buf, img, format); err != nil {
		s.logger.Errorw("render failed", "format", format, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.metrics.Renders.WithLabelValues(string(format)).Inc()

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// instrument records request count, latency and a debug log line for route.
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		s.metrics.Requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.metrics.Durations.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debugw("request",
			"route", route,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"duration", elapsed,
		)
	})
}

// frameLabel bounds metric label values to known frame names.
func frameLabel(name string) string {
	f, err := frame.Parse(name)
	if err != nil {
		return "unknown"
	}
	return f.String()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
