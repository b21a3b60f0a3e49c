// Package http exposes the lecture API over gin. Handlers translate
// between wire DTOs and the usecase layer; authorization decisions and
// link affordances both come from the same gate so the two can never
// disagree.
package http

import (
	"fmt"
	"net/http"

	"lecturehub/internal/config"
	"lecturehub/internal/domain"
	"lecturehub/internal/http/hypermedia"
	"lecturehub/internal/infra/auth"
	"lecturehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

type Server struct {
	cfg config.Config
	r   *gin.Engine

	lectures   *usecase.LectureService
	identities *usecase.IdentityService
	resolver   *auth.IdentityResolver
	gate       domain.Authorizer
	asm        *hypermedia.Assembler
}

type ServerDeps struct {
	Lectures   *usecase.LectureService
	Identities *usecase.IdentityService
	Resolver   *auth.IdentityResolver
	Gate       domain.Authorizer
}

func NewServer(cfg config.Config, deps ServerDeps) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	gate := deps.Gate
	if gate == nil {
		gate = auth.NewGate()
	}
	s := &Server{
		cfg:        cfg,
		r:          r,
		lectures:   deps.Lectures,
		identities: deps.Identities,
		resolver:   deps.Resolver,
		gate:       gate,
		asm:        hypermedia.NewAssembler(cfg.BaseURL, gate),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.r.GET("/api", s.handleIndex)

	s.r.POST("/identities", s.handleRegister)
	s.r.POST("/identities/login", s.handleLogin)

	lectures := s.r.Group("/lectures", s.resolveIdentity)
	{
		lectures.POST("", s.handleCreateLecture)
		lectures.GET("/:id", s.requireRole(domain.RoleUser), s.handleGetLecture)
		lectures.PUT("/:id", s.handleUpdateLecture)
		lectures.GET("", s.requireRole(domain.RoleAdmin), s.handleListLectures)
	}

	s.r.NoRoute(func(c *gin.Context) {
		writeErrorStatus(c, http.StatusNotFound, "no such route")
	})
}

// resolveIdentity attaches the caller identity to the request context.
// An absent credential yields the anonymous identity; a present but
// unverifiable one is rejected here.
func (s *Server) resolveIdentity(c *gin.Context) {
	identity, err := s.resolver.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
	if err != nil {
		writeError(c, err)
		c.Abort()
		return
	}
	c.Set(identityContextKey, identity)
	c.Next()
}

func (s *Server) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if decision := s.gate.Authorize(callerIdentity(c), role, ""); !decision.Allowed {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrForbidden, decision.Reason))
			c.Abort()
			return
		}
		c.Next()
	}
}

func callerIdentity(c *gin.Context) domain.Identity {
	raw, ok := c.Get(identityContextKey)
	if !ok {
		return domain.Anonymous()
	}
	identity, ok := raw.(domain.Identity)
	if !ok {
		return domain.Anonymous()
	}
	return identity
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"_links": s.asm.IndexLinks()})
}

func (s *Server) Run() error {
	return s.r.Run(s.cfg.HTTPAddr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.r
}
