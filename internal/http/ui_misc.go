package httpx

import (
	"net/http"
)

// NotFound renders an HTML 404 page inside the error layout.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, http.StatusNotFound, "The page you're looking for doesn't exist.")
}

// Forbidden renders an HTML 403 page for requests the backend refused for this role.
func (h *UIHandlers) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, http.StatusForbidden, "You do not have permission to view this page.")
}

func (h *UIHandlers) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if h.T == nil {
		http.Error(w, message, status)
		return
	}

	data := basePageData(r, PageMeta{Title: http.StatusText(status), PageTitle: http.StatusText(status)})
	data["Code"] = status
	data["Message"] = message

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("failed to render error page", "status", status, "error", err)
	}
}
