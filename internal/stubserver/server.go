// Package stubserver is an in-memory stand-in for the file service. It
// implements the upload and share-by-email endpoints well enough for tests
// and local runs of the client. Nothing is persisted and no mail is sent.
package stubserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
)

const maxMemory = 32 << 20

type storedFile struct {
	name string
	data []byte
}

type Server struct {
	baseURL string
	log     logging.Logger

	mu    sync.Mutex
	files map[string]storedFile
	sent  []models.EmailRequest
}

// New creates a server. baseURL prefixes the returned file links; when
// empty, links are built from the request's Host header.
func New(baseURL string, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	return &Server{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
		files:   make(map[string]storedFile),
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(common.UploadPath, s.upload).Methods(http.MethodPost)
	r.HandleFunc(common.SendEmailPath, s.sendEmail).Methods(http.MethodPost)
	r.HandleFunc("/files/{uuid}", s.download).Methods(http.MethodGet)
	return r
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, hdr, err := r.FormFile(common.FileFieldName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing " + common.FileFieldName})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "read failed"})
		return
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.files[id] = storedFile{name: hdr.Filename, data: data}
	s.mu.Unlock()

	s.log.Info(r.Context(), "file stored", "uuid", id, "name", hdr.Filename, "size", len(data))
	writeJSON(w, http.StatusOK, map[string]string{"file": s.base(r) + "/files/" + id})
}

func (s *Server) sendEmail(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid json"})
		return
	}

	s.mu.Lock()
	_, known := s.files[req.UUID]
	ok := known && req.EmailTo != "" && req.EmailFrom != ""
	if ok {
		s.sent = append(s.sent, req)
	}
	s.mu.Unlock()

	s.logSend(r.Context(), req, ok)
	writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["uuid"]

	s.mu.Lock()
	f, ok := s.files[id]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.name+`"`)
	_, _ = w.Write(f.data)
}

func (s *Server) logSend(ctx context.Context, req models.EmailRequest, ok bool) {
	if ok {
		s.log.Info(ctx, "email accepted", "uuid", req.UUID, "to", req.EmailTo)
		return
	}
	s.log.Warn(ctx, "email rejected", "uuid", req.UUID)
}

func (s *Server) base(r *http.Request) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// File returns the stored content for id.
func (s *Server) File(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	return f.data, ok
}

// Sent lists accepted email requests in arrival order.
func (s *Server) Sent() []models.EmailRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EmailRequest(nil), s.sent...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
