package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/experts/api/http/presenter"
	"github.com/artem13815/experts/pkg/answer"
	"github.com/artem13815/experts/pkg/expert"
	"github.com/artem13815/experts/pkg/logger"
)

// AskHandler exposes the answer use case as JSON.
type AskHandler struct {
	uc      answer.UseCase
	experts *expert.Registry
	model   string
	log     *logger.Logger
}

func NewAskHandler(uc answer.UseCase, experts *expert.Registry, model string, log *logger.Logger) *AskHandler {
	return &AskHandler{uc: uc, experts: experts, model: model, log: log}
}

type askRequest struct {
	Expert   string `json:"expert"`
	Question string `json:"question"`
}

type askResponse struct {
	Expert string `json:"expert"`
	Answer string `json:"answer"`
	Model  string `json:"model"`
}

type expertsResponse struct {
	Experts []string `json:"experts"`
	Default string   `json:"default"`
}

// Experts lists the selectable experts.
// @Summary List experts
// @Tags    experts
// @Produce json
// @Success 200 {object} expertsResponse
// @Router  /experts [get]
func (h *AskHandler) Experts(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, expertsResponse{
		Experts: h.experts.Labels(),
		Default: h.experts.DefaultLabel(),
	})
}

// Ask answers a question as the chosen expert.
// @Summary Ask an expert
// @Description Sends the expert's system prompt and the question to the LLM and returns its answer.
// @Tags    experts
// @Accept  json
// @Produce json
// @Param   input body askRequest true "expert label and question"
// @Success 200 {object} askResponse
// @Failure 400 {object} presenter.ErrorResponse "empty question or invalid JSON"
// @Failure 502 {object} presenter.ErrorResponse "LLM request failed"
// @Failure 503 {object} presenter.ErrorResponse "LLM client unavailable"
// @Router  /ask [post]
func (h *AskHandler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if answer.IsBlank(req.Question) {
		return presenter.ErrorKind(c, http.StatusBadRequest, "question is required", string(answer.KindValidation))
	}
	log := requestLogger(c, h.log).With("expert", req.Expert, "question_len", len([]rune(req.Question)))
	if !h.experts.Has(req.Expert) {
		log.Warn("unknown expert, using default", "default", h.experts.DefaultLabel())
	}

	text, err := h.uc.Fetch(c.Context(), req.Question, req.Expert)
	if err != nil {
		kind := answer.KindOf(err)
		log.Error("ask failed", "kind", kind, "error", err)
		switch kind {
		case answer.KindValidation:
			return presenter.ErrorKind(c, http.StatusBadRequest, err.Error(), string(kind))
		case answer.KindClientUnavailable:
			return presenter.ErrorKind(c, http.StatusServiceUnavailable, err.Error(), string(kind))
		default:
			return presenter.ErrorKind(c, http.StatusBadGateway, err.Error(), string(answer.KindRequestFailed))
		}
	}
	return presenter.JSON(c, http.StatusOK, askResponse{Expert: req.Expert, Answer: text, Model: h.model})
}
