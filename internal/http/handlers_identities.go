package http

import (
	"fmt"
	"net/http"

	"lecturehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorStatus(c, http.StatusBadRequest, "malformed request body")
		return
	}
	identity, err := s.identities.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusCreated, fmt.Sprintf("%s user added", identity.DisplayName))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorStatus(c, http.StatusBadRequest, "malformed request body")
		return
	}
	token, err := s.identities.Login(c.Request.Context(), usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		ClientKey: c.ClientIP(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, token)
}
