package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nursen/oriki/internal/audio"
	"github.com/nursen/oriki/internal/pipeline"
	"github.com/nursen/oriki/internal/quiz"
)

const (
	apiVersion  = "1.0"
	appVersion  = "0.1.0"
	serviceName = "oriki-generation-api"
)

// errorBody is the error envelope the web frontend reads.
type errorBody struct {
	Detail string       `json:"detail"`
	Errors []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string   `json:"field"`
	Message string   `json:"message"`
	Allowed []string `json:"allowed,omitempty"`
}

func respondError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorBody{Detail: detail})
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Oriki API",
		"version": appVersion,
		"docs":    "/api/v1/quiz/questions",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleAPIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": apiVersion,
	})
}

// QuestionView is one quiz question in its wire shape. MaxSelections is
// null for single-select and free-text questions.
type QuestionView struct {
	ID            string       `json:"id" yaml:"id"`
	Text          string       `json:"text" yaml:"text"`
	IsMultiSelect bool         `json:"is_multi_select" yaml:"is_multi_select"`
	MaxSelections *int         `json:"max_selections" yaml:"max_selections"`
	Options       []OptionView `json:"options" yaml:"options"`
}

type OptionView struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type QuestionsView struct {
	Questions      []QuestionView `json:"questions" yaml:"questions"`
	TotalQuestions int            `json:"total_questions" yaml:"total_questions"`
	Version        string         `json:"version" yaml:"version"`
}

// QuestionsPayload renders the quiz table in its wire shape.
func QuestionsPayload() QuestionsView {
	qs := quiz.AllQuestions()
	out := make([]QuestionView, len(qs))
	for i, q := range qs {
		qj := QuestionView{
			ID:            q.ID,
			Text:          q.Text,
			IsMultiSelect: q.MultiSelect,
			Options:       make([]OptionView, len(q.Options)),
		}
		if q.MultiSelect {
			n := q.MaxSelections
			qj.MaxSelections = &n
		}
		for j, o := range q.Options {
			qj.Options[j] = OptionView{Value: o.Value, Label: o.Label}
		}
		out[i] = qj
	}
	return QuestionsView{Questions: out, TotalQuestions: len(out), Version: apiVersion}
}

func (s *Server) handleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, QuestionsPayload())
}

func (s *Server) handleGenerate(c *gin.Context) {
	var sub quiz.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	res, err := s.deps.Generator.Run(c.Request.Context(), sub)
	if err != nil {
		s.writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// stageMessages prefixes the detail of a failed stage.
var stageMessages = map[pipeline.Stage]string{
	pipeline.StageThemes:       "Theme extraction failed",
	pipeline.StagePoem:         "Poetry generation failed",
	pipeline.StageAffirmations: "Affirmation generation failed",
}

func (s *Server) writeGenerateError(c *gin.Context, err error) {
	var se *pipeline.StageError
	if !errors.As(err, &se) {
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Generation failed: %v", err))
		return
	}

	switch se.Kind {
	case pipeline.KindInvalidInput:
		body := errorBody{Detail: fmt.Sprintf("Invalid submission: %v", se.Err)}
		var verrs quiz.ValidationErrors
		if errors.As(se.Err, &verrs) {
			for _, ve := range verrs {
				body.Errors = append(body.Errors, fieldError{Field: ve.Field, Message: ve.Message, Allowed: ve.Allowed})
			}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, body)
	case pipeline.KindUnknownMode:
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid cultural mode: %v", se.Err))
	default:
		prefix, ok := stageMessages[se.Stage]
		if !ok {
			prefix = "Generation failed"
		}
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, se.Err))
	}
}

type audioRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

type audioResponse struct {
	AudioBase64     string  `json:"audio_base64"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func (s *Server) handleAudio(c *gin.Context) {
	var req audioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.Voice == "" {
		req.Voice = audio.DefaultVoice
	}

	clip, err := s.deps.Renderer.Render(c.Request.Context(), req.Text, req.Voice)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, audioResponse{AudioBase64: clip.Base64(), DurationSeconds: clip.DurationSeconds})
	case errors.Is(err, audio.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Audio generation is not configured")
	case errors.Is(err, audio.ErrEmptyText), errors.Is(err, audio.ErrBadVoice):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, fmt.Sprintf("Audio generation failed: %v", err))
	}
}
