package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/dashboard"
	"ResearchCatalog/internal/domain"
	"ResearchCatalog/internal/usecase"
)

const maxEventBytes = 16 << 10

func (s *Server) snapshot(w http.ResponseWriter) *catalog.Snapshot {
	var snap *catalog.Snapshot
	if s.catalog != nil {
		snap = s.catalog.Current()
	}
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded", s.logger)
	}
	return snap
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{"status": "ok", "catalog_loaded": false}
	if s.catalog != nil {
		if snap := s.catalog.Current(); snap != nil {
			body["catalog_loaded"] = true
			body["loaded_at"] = snap.LoadedAt.Format(time.RFC3339)
		}
	}
	writeJSON(w, http.StatusOK, body, s.logger)
}

func (s *Server) handleCongressDocument(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, snap.CongressDoc, s.logger)
}

func (s *Server) handleJournalDocument(w http.ResponseWriter, _ *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, snap.JournalDoc, s.logger)
}

func (s *Server) handleCareers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Careers(), s.logger)
}

func (s *Server) handleCongressView(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	session := usecase.NewCongressSession(snap, nil)
	session.Apply(congressFilterFromQuery(q))

	if key := q.Get("sort"); key != "" {
		state, err := sortFromQuery(q, dashboard.CongressPipeline().HasSortKey)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), s.logger)
			return
		}
		session.SetSort(state)
	}

	s.countView(usecase.ModuleCongresses)
	writeJSON(w, http.StatusOK, session.View(), s.logger)
}

func (s *Server) handleJournalView(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}

	q := r.URL.Query()
	session := usecase.NewJournalSession(snap, nil)
	session.Apply(domain.JournalFilter{
		Search:     q.Get(string(domain.FieldSearch)),
		Publisher:  q.Get(string(domain.FieldPublisher)),
		Enfoque:    q.Get(string(domain.FieldEnfoque)),
		Disciplina: q.Get(string(domain.FieldDisciplina)),
	})

	if key := q.Get("sort"); key != "" {
		state, err := sortFromQuery(q, dashboard.JournalPipeline().HasSortKey)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), s.logger)
			return
		}
		session.SetSort(state)
	}

	s.countView(usecase.ModuleJournals)
	writeJSON(w, http.StatusOK, session.View(), s.logger)
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBytes)

	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "event too large", s.logger)
			return
		}
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body", s.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "malformed JSON", s.logger)
		return
	}

	if err := s.validator.Validate(event); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			writeValidationError(w, vErr, s.logger)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), s.logger)
		return
	}

	event.ID = uuid.NewString()
	event.ReceivedAt = s.clock().UTC()

	if s.metrics != nil {
		s.metrics.EventsReceived.WithLabelValues(string(event.Type)).Inc()
	}

	var err error
	if s.sink != nil {
		err = s.sink.SaveEvent(r.Context(), event)
	}
	if s.metrics != nil {
		s.metrics.ObserveStored(err)
	}
	if err != nil {
		s.logger.Error("store event failed", "event", event.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "event not stored", s.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) countView(module string) {
	if s.metrics != nil {
		s.metrics.ViewRequests.WithLabelValues(module).Inc()
	}
}

func congressFilterFromQuery(q url.Values) domain.CongressFilter {
	return domain.CongressFilter{
		Search:     q.Get(string(domain.FieldSearch)),
		Country:    q.Get(string(domain.FieldCountry)),
		Categorias: nonEmpty(q[string(domain.FieldCategoria)]),
		Linea:      q.Get(string(domain.FieldLinea)),
		Sublinea:   q.Get(string(domain.FieldSublinea)),
		Modality:   domain.Modality(q.Get(string(domain.FieldModality))),
		Indexation: domain.Indexation(q.Get(string(domain.FieldIndexation))),
		Careers:    nonEmpty(q[string(domain.FieldCareer)]),
	}
}

func sortFromQuery(q url.Values, known func(string) bool) (dashboard.SortState, error) {
	key := q.Get("sort")
	if !known(key) {
		return dashboard.SortState{}, usecase.ErrUnknownSortKey
	}
	dir := dashboard.Asc
	switch q.Get("dir") {
	case "", string(dashboard.Asc):
	case string(dashboard.Desc):
		dir = dashboard.Desc
	default:
		return dashboard.SortState{}, errors.New("dir must be asc or desc")
	}
	return dashboard.SortState{Key: key, Dir: dir}, nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
