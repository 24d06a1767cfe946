// Package http provides http transport for the checker service
package http

import (
	stdhttp "net/http"

	"honest/internal/modkit/httpkit"
	"honest/internal/services/checker/domain"
	svc "honest/internal/services/checker/service"
)

// Register mounts checker endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
	httpkit.PostJSON[domain.CheckInput](r, "/readability", h.readability)
	httpkit.GetCall(r, "/checks", h.checks)
	httpkit.PutJSON[domain.ToggleInput](r, "/checks", h.toggle)
	httpkit.GetCall(r, "/cinnamon", h.cinnamonWords)
	httpkit.PostJSON[domain.WordInput](r, "/cinnamon", h.addCinnamon)
	httpkit.PostJSON[domain.WordInput](r, "/cinnamon/remove", h.removeCinnamon)
}

type handlers struct{ svc svc.Service }

func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in.Text)
}

func (h *handlers) readability(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Readability(r.Context(), in.Text), nil
}

func (h *handlers) checks(*stdhttp.Request) (any, error) {
	return domain.Checks{Checks: h.svc.Checks()}, nil
}

func (h *handlers) toggle(_ *stdhttp.Request, in domain.ToggleInput) (any, error) {
	h.svc.SetCheckEnabled(in.Name, *in.Enabled)
	return domain.Checks{Checks: h.svc.Checks()}, nil
}

func (h *handlers) cinnamonWords(*stdhttp.Request) (any, error) {
	return domain.Words{Words: h.svc.CinnamonWords()}, nil
}

func (h *handlers) addCinnamon(_ *stdhttp.Request, in domain.WordInput) (any, error) {
	h.svc.AddCinnamonWord(in.Word)
	return domain.Words{Words: h.svc.CinnamonWords()}, nil
}

func (h *handlers) removeCinnamon(_ *stdhttp.Request, in domain.WordInput) (any, error) {
	h.svc.RemoveCinnamonWord(in.Word)
	return domain.Words{Words: h.svc.CinnamonWords()}, nil
}
