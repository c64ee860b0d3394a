package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meetoza/resume-analyzer/internal/ingestion"
	"github.com/meetoza/resume-analyzer/internal/jd"
	"github.com/meetoza/resume-analyzer/internal/recommend"
	"github.com/meetoza/resume-analyzer/internal/resume"
	"github.com/meetoza/resume-analyzer/internal/scoring"
)

// maxUploadSize bounds resume uploads.
const maxUploadSize = 10 << 20

// ScoreResponse is the body returned by the scoring endpoints.
type ScoreResponse struct {
	Result   *scoring.Result `json:"result"`
	JDSkills *jd.SkillSet    `json:"jd_skills"`
}

// AnalyzeResponse combines parsing, scoring and role recommendations.
type AnalyzeResponse struct {
	Resume           *resume.ParsedResume `json:"resume"`
	Result           *scoring.Result      `json:"result,omitempty"`
	JDSkills         *jd.SkillSet         `json:"jd_skills,omitempty"`
	RecommendedRoles []recommend.Match    `json:"recommended_roles,omitempty"`
}

// ScoreTextRequest is the JSON body for text-only scoring.
type ScoreTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// RecommendRolesRequest is the JSON body for role recommendation.
type RecommendRolesRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	TopK       int    `json:"top_k" validate:"omitempty,min=1,max=10"`
}

// handleParseResume extracts structured data from an uploaded resume.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeTextFromUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.parser.Parse(text))
}

// handleScoreResume scores an uploaded resume against a job description
// supplied either inline (job_description) or by URL (job_url).
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeTextFromUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	jdText, err := s.jobDescriptionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	parsed := s.parser.Parse(text)
	skillSet := s.jdParser.Parse(jdText)
	result := s.scorer.Score(r.Context(), parsed.Skills, skillSet, parsed.Sentences)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Result: result, JDSkills: skillSet})
}

// handleAnalyzeResume runs the full pipeline: parse, score when a job
// description is supplied, and recommend roles when a recommender is wired.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeTextFromUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	parsed := s.parser.Parse(text)
	resp := AnalyzeResponse{Resume: parsed}

	if jdText, err := s.jobDescriptionFromRequest(r); err == nil {
		resp.JDSkills = s.jdParser.Parse(jdText)
		resp.Result = s.scorer.Score(r.Context(), parsed.Skills, resp.JDSkills, parsed.Sentences)
	}

	if s.recommender != nil {
		roles, err := s.recommender.Recommend(r.Context(), text, 3)
		if err != nil {
			log.Printf("Role recommendation failed: %v", err)
		} else {
			resp.RecommendedRoles = roles
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleScoreText scores raw resume text against a job description without
// a file upload.
func (s *Server) handleScoreText(w http.ResponseWriter, r *http.Request) {
	var req ScoreTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	parsed := s.parser.Parse(req.ResumeText)
	skillSet := s.jdParser.Parse(req.JobDescription)
	result := s.scorer.Score(r.Context(), parsed.Skills, skillSet, parsed.Sentences)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Result: result, JDSkills: skillSet})
}

// handleRecommendRoles suggests target roles for raw resume text.
func (s *Server) handleRecommendRoles(w http.ResponseWriter, r *http.Request) {
	if s.recommender == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "role recommendation is not configured")
		return
	}

	var req RecommendRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	roles, err := s.recommender.Recommend(r.Context(), req.ResumeText, req.TopK)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"recommended_roles": roles})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// resumeTextFromUpload spools the multipart "file" field to a temp file and
// extracts its text.
func (s *Server) resumeTextFromUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", &ErrValidation{Field: "file", Message: "invalid multipart form"}
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", &ErrMissingField{Field: "file"}
	}
	defer file.Close()

	path, err := spoolUpload(file, header.Filename)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	return ingestion.ExtractText(path)
}

// jobDescriptionFromRequest resolves the job description from the inline
// form field or, failing that, by fetching job_url.
func (s *Server) jobDescriptionFromRequest(r *http.Request) (string, error) {
	if jdText := strings.TrimSpace(r.FormValue("job_description")); jdText != "" {
		return jdText, nil
	}
	if jdURL := strings.TrimSpace(r.FormValue("job_url")); jdURL != "" {
		return ingestion.FromURL(r.Context(), jdURL)
	}
	return "", &ErrMissingField{Field: "job_description"}
}

// spoolUpload writes the upload to a temp file keeping the original
// extension, so the text extractor can dispatch on it. The caller removes
// the file.
func spoolUpload(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".txt"
	}
	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// validationMessage flattens the first validator error into a readable
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%s failed validation (%s)", verrs[0].Field(), verrs[0].Tag())
	}
	return err.Error()
}
