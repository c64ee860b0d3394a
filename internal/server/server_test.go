package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetoza/resume-analyzer/internal/jd"
	"github.com/meetoza/resume-analyzer/internal/resume"
	"github.com/meetoza/resume-analyzer/internal/scoring"
)

const testResume = `John Doe
john@example.com

Skills
Python, Django, Docker

Experience
Software Engineer, Jan 2023 - Jan 2024
• Built and deployed REST APIs with Python`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0}, Deps{
		Parser:   resume.NewParser(),
		JDParser: jd.NewParser(),
		Scorer:   scoring.NewScorer(scoring.DefaultConfig(), nil),
	})
}

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleParseResume(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := multipartBody(t, "resume.txt", testResume, nil)

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var parsed resume.ParsedResume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, "John Doe", parsed.Name)
	assert.Contains(t, parsed.Skills, "Python")
	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, 13, parsed.Experience[0].Months)
}

func TestHandleParseResumeMissingFile(t *testing.T) {
	srv := newTestServer(t)
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("other", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParseResumeUnsupportedFormat(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := multipartBody(t, "resume.docx", "binary", nil)

	req := httptest.NewRequest(http.MethodPost, "/parse-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleScoreResume(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := multipartBody(t, "resume.txt", testResume, map[string]string{
		"job_description": "Requirements: Python and Kubernetes\nNice to have: React",
	})

	req := httptest.NewRequest(http.MethodPost, "/score-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Contains(t, resp.Result.Breakdown.Exact, "python")
	assert.Contains(t, resp.JDSkills.MustHave, "kubernetes")
	assert.Greater(t, resp.Result.Score, 0.0)
}

func TestHandleScoreResumeMissingJobDescription(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := multipartBody(t, "resume.txt", testResume, nil)

	req := httptest.NewRequest(http.MethodPost, "/score-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScoreText(t *testing.T) {
	srv := newTestServer(t)
	payload, err := json.Marshal(ScoreTextRequest{
		ResumeText:     testResume,
		JobDescription: "Must have: Python",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/score-text", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Result.Breakdown.Exact, "python")
}

func TestHandleScoreTextValidation(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/score-text", strings.NewReader(`{"resume_text": ""}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeResumeWithoutJD(t *testing.T) {
	srv := newTestServer(t)
	body, contentType := multipartBody(t, "resume.txt", testResume, nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze-resume", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Resume)
	assert.Equal(t, "John Doe", resp.Resume.Name)
	assert.Nil(t, resp.Result, "no score without a job description")
}

func TestHandleRecommendRolesUnconfigured(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/recommend-roles", strings.NewReader(`{"resume_text": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
