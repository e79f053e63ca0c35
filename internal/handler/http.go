package handler

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maryamb/redirector/internal/logger"
	"github.com/maryamb/redirector/internal/metrics"
	"github.com/maryamb/redirector/internal/middleware"
	"github.com/maryamb/redirector/internal/storage"
)

//go:embed templates/index.html
var indexHTML string

// messagePlaceholder marks the spot in the index page where a feedback
// message is substituted. The substitution is a literal string replacement.
const messagePlaceholder = "<!-- MESSAGE_PLACEHOLDER -->"

type RedirectService interface {
	Create(id, targetURL, owner string) error
	Resolve(id string) (string, error)
}

type Handler struct {
	service RedirectService
}

func NewHandler(service RedirectService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipWriter)

	r.Get("/", h.handleIndex)
	r.Post("/create", h.handleCreate)
	r.Get("/go/{id}", h.handleRedirect)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Query parameters set by a failed redirect are not rendered here;
	// the message region is always empty on the index page.
	renderIndex(w, "", false)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	for _, field := range []string{"short_name", "url", "owner"} {
		if !r.PostForm.Has(field) {
			http.Error(w, "Missing form field "+field, http.StatusBadRequest)
			return
		}
	}

	err := h.service.Create(
		r.PostForm.Get("short_name"),
		r.PostForm.Get("url"),
		r.PostForm.Get("owner"),
	)

	switch {
	case err == nil:
		metrics.CreationsTotal.WithLabelValues("created").Inc()
		renderIndex(w, "Redirect created successfully", true)
	case errors.Is(err, storage.ErrAlreadyExists):
		metrics.CreationsTotal.WithLabelValues("conflict").Inc()
		renderIndex(w, "ID already exists", false)
	default:
		metrics.CreationsTotal.WithLabelValues("error").Inc()
		renderIndex(w, "An error occurred while creating the redirect", false)
	}
}

func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	targetURL, err := h.service.Resolve(id)

	switch {
	case err == nil:
		metrics.ResolutionsTotal.WithLabelValues("hit").Inc()
		http.Redirect(w, r, targetURL, http.StatusMovedPermanently)
	case errors.Is(err, storage.ErrNotFound):
		metrics.ResolutionsTotal.WithLabelValues("miss").Inc()
		redirectHome(w, r, "Redirect not found")
	default:
		metrics.ResolutionsTotal.WithLabelValues("error").Inc()
		redirectHome(w, r, "An error occurred while looking up the redirect")
	}
}

// redirectHome sends the client back to the index page with the error
// message in the query string.
func redirectHome(w http.ResponseWriter, r *http.Request, message string) {
	q := url.Values{}
	q.Set("message", message)
	q.Set("success", "false")

	http.Redirect(w, r, "/?"+q.Encode(), http.StatusTemporaryRedirect)
}

// renderIndex writes the index page, substituting message into the
// placeholder. An empty message leaves the message region empty.
func renderIndex(w http.ResponseWriter, message string, success bool) {
	page := indexHTML

	if message != "" {
		class := "error"
		if success {
			class = "success"
		}
		div := fmt.Sprintf("<div class='message %s' style='display:block;'>%s</div>", class, message)
		page = strings.Replace(page, messagePlaceholder, div, 1)
	} else {
		page = strings.Replace(page, messagePlaceholder, "", 1)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, page)
}
