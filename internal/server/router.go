package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adipo-server/internal/routes"
)

type Server struct {
	deps           routes.Deps
	uploadDir      string
	allowedOrigins []string
}

func New(d routes.Deps, uploadDir string, allowedOrigins []string) *Server {
	return &Server{deps: d, uploadDir: uploadDir, allowedOrigins: allowedOrigins}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.deps

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/documentaries", routes.DocumentariesList(sd))
	mux.Handle("POST /api/documentaries", requireAdmin(sd.Tokens, routes.DocumentaryCreate(sd)))
	mux.Handle("DELETE /api/documentaries/{id}", requireAdmin(sd.Tokens, routes.DocumentaryDelete(sd)))
	mux.HandleFunc("POST /api/documentaries/{id}/download", routes.DocumentaryDownload(sd))

	mux.HandleFunc("GET /api/comments", routes.CommentsList(sd))
	mux.HandleFunc("POST /api/comments", routes.CommentCreate(sd))

	mux.HandleFunc("POST /api/admin/login", routes.AdminLogin(sd))
	mux.HandleFunc("POST /api/user/login", routes.UserLogin(sd))
	mux.HandleFunc("POST /api/user/register", routes.UserRegister(sd))

	mux.Handle("POST /api/upload", requireAdmin(sd.Tokens, routes.Upload(sd)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadDir))))

	var h http.Handler = mux
	h = withSecurityHeaders(h)
	h = withCORS(s.allowedOrigins)(h)
	h = withMetrics(h)
	h = withLogging(h)
	h = withCorrelationID(h)
	return h
}
