package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/studydeck/internal/catalog"
	"github.com/ziadkadry99/studydeck/internal/pages"
	"github.com/ziadkadry99/studydeck/internal/shell"
	"github.com/ziadkadry99/studydeck/internal/viewer"
)

func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Post("/nav/{view}", s.handleNavigate)

	r.Route("/modules", func(r chi.Router) {
		r.Post("/close", s.handleCloseModule)
		r.Post("/{id}/open", s.handleOpenModule)
		r.Post("/{id}/toggle", s.handleToggleCompletion)
	})
	r.Post("/home/modules/{id}/open", s.handleHomeOpenModule)

	r.Route("/resources", func(r chi.Router) {
		r.Post("/close", s.handleCloseResource)
		r.Post("/{id}/open", s.handleOpenResource)
	})

	r.Post("/quiz/viewer", s.handleQuizViewer)
	r.Post("/glossary/viewer", s.handleGlossaryViewer)
	r.Post("/glossary/search", s.handleGlossarySearch)
	r.Get("/glossary", s.handleGlossaryTerms)

	r.Route("/viewer", func(r chi.Router) {
		r.Get("/state", s.handleViewerState)
		r.Get("/download", s.handleDownload)
		r.Post("/key", s.handleKey)
		r.Post("/{action}", s.handleViewerAction)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/progress", s.handleProgress)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sh, user := s.session(r)

	done, err := s.completion.Load(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, pages.Input{Catalog: s.catalog, Snapshot: sh.Snapshot(), Completed: done}); err != nil {
		log.Printf("server: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	sh.Navigate(shell.ParseView(chi.URLParam(r, "view")))
	respond(w, r, sh)
}

func (s *Server) handleOpenModule(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || !sh.OpenModule(id) {
		notFound(w, r, "module not found")
		return
	}
	respond(w, r, sh)
}

func (s *Server) handleCloseModule(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	sh.CloseModule()
	respond(w, r, sh)
}

// handleHomeOpenModule switches to the modules page and asks it to open the
// module once mounted. Unknown ids are dropped there.
func (s *Server) handleHomeOpenModule(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r, "module not found")
		return
	}
	sh.NavigateAndOpenModule(id)
	respond(w, r, sh)
}

func (s *Server) handleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	sh, user := s.session(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, r, "module not found")
		return
	}
	if _, ok := s.catalog.Module(id); !ok {
		notFound(w, r, "module not found")
		return
	}

	completed, err := s.completion.Toggle(r.Context(), user, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"module_id": id, "completed": completed})
		return
	}
	respond(w, r, sh)
}

func (s *Server) handleOpenResource(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	if !sh.OpenResource(chi.URLParam(r, "id")) {
		notFound(w, r, "resource not found")
		return
	}
	respond(w, r, sh)
}

func (s *Server) handleCloseResource(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	sh.CloseResource()
	respond(w, r, sh)
}

func (s *Server) handleQuizViewer(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	sh.ToggleQuizViewer()
	respond(w, r, sh)
}

func (s *Server) handleGlossaryViewer(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	sh.ToggleGlossaryViewer()
	respond(w, r, sh)
}

// handleGlossarySearch stores the search box contents on the glossary page,
// mounting it first when another view is showing.
func (s *Server) handleGlossarySearch(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	if sh.Snapshot().View != shell.ViewGlossary {
		sh.Navigate(shell.ViewGlossary)
	}
	sh.SetGlossarySearch(r.FormValue("q"))
	respond(w, r, sh)
}

// handleGlossaryTerms is a read-only term lookup; it leaves the session alone.
func (s *Server) handleGlossaryTerms(w http.ResponseWriter, r *http.Request) {
	terms := s.catalog.SearchTerms(r.URL.Query().Get("q"))
	if terms == nil {
		terms = []catalog.Term{}
	}
	writeJSON(w, http.StatusOK, terms)
}

func (s *Server) handleViewerAction(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)

	var fn func(c *viewer.Coordinator)
	switch chi.URLParam(r, "action") {
	case "prev":
		fn = (*viewer.Coordinator).PreviousPage
	case "next":
		fn = (*viewer.Coordinator).NextPage
	case "zoom-in":
		fn = (*viewer.Coordinator).ZoomIn
	case "zoom-out":
		fn = (*viewer.Coordinator).ZoomOut
	case "rotate":
		fn = (*viewer.Coordinator).Rotate
	case "page":
		page := r.FormValue("page")
		fn = func(c *viewer.Coordinator) { c.GoToPage(page) }
	default:
		notFound(w, r, "unknown viewer action")
		return
	}

	if !sh.WithViewer(fn) && wantsJSON(r) {
		http.Error(w, "no document open", http.StatusConflict)
		return
	}
	respond(w, r, sh)
}

type keyResponse struct {
	Handled   bool           `json:"handled"`
	State     *viewer.State  `json:"state,omitempty"`
	Target    viewer.Locator `json:"target,omitzero"`
	Transform string         `json:"transform,omitempty"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)

	var ev viewer.KeyEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid key event", http.StatusBadRequest)
		return
	}

	resp := keyResponse{Handled: sh.HandleKey(ev)}
	if v := sh.Snapshot().Viewer; v != nil {
		state := v.State
		resp.State = &state
		resp.Target = v.Target
		resp.Transform = v.Transform
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewerState(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	v := sh.Snapshot().Viewer
	if v == nil {
		http.Error(w, "no document open", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleDownload serves the open document as an attachment named after its
// title. The view state plays no part.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sh, _ := s.session(r)
	req, ok := sh.Download()
	if !ok {
		http.Error(w, "no document open", http.StatusNotFound)
		return
	}

	file, ok := catalog.FilePath(s.cfg.MaterialsDir, req.Path)
	if !ok {
		http.Error(w, "document is not a local material", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", req.ContentDisposition())
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, file)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	_, user := s.session(r)
	done, err := s.completion.Load(r.Context(), user)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"completed_modules": done.IDs(),
		"progress":          pages.ComputeProgress(s.catalog, done),
	})
}

// respond finishes a state-changing request: JSON clients get the new
// snapshot, form posts are redirected back to the shell.
func respond(w http.ResponseWriter, r *http.Request, sh *shell.Shell) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, sh.Snapshot())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func notFound(w http.ResponseWriter, r *http.Request, msg string) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": msg})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
