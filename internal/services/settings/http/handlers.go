// Package http provides http transport for settings
package http

import (
	stdhttp "net/http"

	"honest/internal/modkit/httpkit"
	"honest/internal/services/settings/domain"
	svc "honest/internal/services/settings/service"
)

// Register mounts settings endpoints on the given router.
// The key travels as a query parameter so handlers stay router-agnostic
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetCall(r, "/settings", h.get)
	httpkit.PutJSON[domain.PutInput](r, "/settings", h.put)
	httpkit.DeleteCall(r, "/settings", h.del)
}

type handlers struct{ svc svc.Service }

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), r.URL.Query().Get("key"))
}

func (h *handlers) put(r *stdhttp.Request, in domain.PutInput) (any, error) {
	return h.svc.Put(r.Context(), in)
}

func (h *handlers) del(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), r.URL.Query().Get("key")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
