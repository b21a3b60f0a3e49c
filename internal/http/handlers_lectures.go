package http

import (
	"net/http"
	"strconv"
	"time"

	"lecturehub/internal/domain"
	"lecturehub/internal/http/hypermedia"
	"lecturehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type lectureRequest struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	BeginEnrollment   time.Time `json:"beginEnrollmentDateTime"`
	CloseEnrollment   time.Time `json:"closeEnrollmentDateTime"`
	BeginLecture      time.Time `json:"beginLectureDateTime"`
	EndLecture        time.Time `json:"endLectureDateTime"`
	Location          string    `json:"location"`
	BasePrice         int       `json:"basePrice"`
	MaxPrice          int       `json:"maxPrice"`
	LimitOfEnrollment int       `json:"limitOfEnrollment"`
}

func (r lectureRequest) toInput() domain.LectureInput {
	return domain.LectureInput{
		Name:              r.Name,
		Description:       r.Description,
		BeginEnrollment:   r.BeginEnrollment,
		CloseEnrollment:   r.CloseEnrollment,
		BeginLecture:      r.BeginLecture,
		EndLecture:        r.EndLecture,
		Location:          r.Location,
		BasePrice:         r.BasePrice,
		MaxPrice:          r.MaxPrice,
		LimitOfEnrollment: r.LimitOfEnrollment,
	}
}

type lectureResponse struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	BeginEnrollment   time.Time        `json:"beginEnrollmentDateTime"`
	CloseEnrollment   time.Time        `json:"closeEnrollmentDateTime"`
	BeginLecture      time.Time        `json:"beginLectureDateTime"`
	EndLecture        time.Time        `json:"endLectureDateTime"`
	Location          string           `json:"location"`
	BasePrice         int              `json:"basePrice"`
	MaxPrice          int              `json:"maxPrice"`
	LimitOfEnrollment int              `json:"limitOfEnrollment"`
	Offline           bool             `json:"offline"`
	Free              bool             `json:"free"`
	Status            string           `json:"lectureStatus"`
	Email             string           `json:"email,omitempty"`
	Links             hypermedia.Links `json:"_links"`
}

func (s *Server) lectureResponse(view usecase.LectureView, caller domain.Identity, created bool) lectureResponse {
	l := view.Lecture
	return lectureResponse{
		ID:                l.ID,
		Name:              l.Name,
		Description:       l.Description,
		BeginEnrollment:   l.BeginEnrollment,
		CloseEnrollment:   l.CloseEnrollment,
		BeginLecture:      l.BeginLecture,
		EndLecture:        l.EndLecture,
		Location:          l.Location,
		BasePrice:         l.BasePrice,
		MaxPrice:          l.MaxPrice,
		LimitOfEnrollment: l.LimitOfEnrollment,
		Offline:           l.Offline,
		Free:              l.Free,
		Status:            string(l.Status),
		Email:             view.OwnerEmail,
		Links:             s.asm.LectureLinks(l, caller, created),
	}
}

func (s *Server) handleCreateLecture(c *gin.Context) {
	var req lectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorStatus(c, http.StatusBadRequest, "malformed request body")
		return
	}
	caller := callerIdentity(c)
	view, err := s.lectures.Create(c.Request.Context(), req.toInput(), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Location", s.asm.LectureHref(view.Lecture.ID))
	c.JSON(http.StatusCreated, s.lectureResponse(view, caller, true))
}

func (s *Server) handleGetLecture(c *gin.Context) {
	id, ok := lectureID(c)
	if !ok {
		return
	}
	view, err := s.lectures.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.lectureResponse(view, callerIdentity(c), false))
}

func (s *Server) handleUpdateLecture(c *gin.Context) {
	id, ok := lectureID(c)
	if !ok {
		return
	}
	var req lectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorStatus(c, http.StatusBadRequest, "malformed request body")
		return
	}
	caller := callerIdentity(c)
	view, err := s.lectures.Update(c.Request.Context(), id, req.toInput(), caller)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.lectureResponse(view, caller, false))
}

type pageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
	Number        int   `json:"number"`
}

type lecturePageResponse struct {
	Embedded struct {
		Lectures []lectureResponse `json:"lectures"`
	} `json:"_embedded"`
	Links hypermedia.Links `json:"_links"`
	Page  pageMetadata     `json:"page"`
}

func (s *Server) handleListLectures(c *gin.Context) {
	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 20)
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	views, total, err := s.lectures.List(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	caller := callerIdentity(c)
	var resp lecturePageResponse
	resp.Embedded.Lectures = make([]lectureResponse, 0, len(views))
	for _, view := range views {
		resp.Embedded.Lectures = append(resp.Embedded.Lectures, s.lectureResponse(view, caller, false))
	}
	resp.Links = s.asm.CollectionLinks(page, size)
	resp.Page = pageMetadata{
		Size:          size,
		TotalElements: total,
		TotalPages:    (total + int64(size) - 1) / int64(size),
		Number:        page,
	}
	c.JSON(http.StatusOK, resp)
}

func lectureID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		writeErrorStatus(c, http.StatusBadRequest, "invalid lecture id")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
