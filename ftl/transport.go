package ftl

import (
	"io"
	"net/http"
)

// ServeHTTP adapts the dispatcher to net/http so a Server can be mounted
// directly in a hosting router. The request context is passed through to the
// tool handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "error reading request body", http.StatusBadRequest)
			return
		}
		body = data
	}

	resp := s.Handle(r.Context(), Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   body,
	})

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
