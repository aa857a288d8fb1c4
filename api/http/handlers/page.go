package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/experts/pkg/answer"
	"github.com/artem13815/experts/pkg/expert"
	"github.com/artem13815/experts/pkg/logger"
)

const (
	msgEmptyQuestion     = "質問を入力してください。"
	msgClientUnavailable = "LLM クライアントの初期化に失敗しました。設定を確認してください。詳細: %v"
	msgRequestFailed     = "LLM への問い合わせ中にエラーが発生しました: %v"
)

// PageHandler serves the single-page question form.
type PageHandler struct {
	uc      answer.UseCase
	experts *expert.Registry
	log     *logger.Logger
}

func NewPageHandler(uc answer.UseCase, experts *expert.Registry, log *logger.Logger) *PageHandler {
	return &PageHandler{uc: uc, experts: experts, log: log}
}

type expertOption struct {
	Label   string
	Checked bool
}

type pageView struct {
	Experts   []expertOption
	Question  string
	Submitted bool
	Expert    string
	Warning   string
	Error     string
	Answer    string
	Answered  bool
}

func (h *PageHandler) view(selected, question string) pageView {
	if !h.experts.Has(selected) {
		selected = h.experts.DefaultLabel()
	}
	labels := h.experts.Labels()
	opts := make([]expertOption, 0, len(labels))
	for _, l := range labels {
		opts = append(opts, expertOption{Label: l, Checked: l == selected})
	}
	return pageView{Experts: opts, Question: question}
}

// Show renders the empty form.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	return c.Render("index", h.view(h.experts.DefaultLabel(), ""))
}

// Submit handles the form post and renders the answer area. Failures are shown
// as banners; the page itself always renders.
func (h *PageHandler) Submit(c *fiber.Ctx) error {
	label := c.FormValue("expert")
	question := c.FormValue("question")
	log := requestLogger(c, h.log).With("expert", label, "question_len", len([]rune(question)))

	v := h.view(label, question)
	v.Submitted = true
	v.Expert = label
	if !h.experts.Has(label) {
		log.Warn("unknown expert, using default", "default", h.experts.DefaultLabel())
	}
	if answer.IsBlank(question) {
		v.Warning = msgEmptyQuestion
		return c.Render("index", v)
	}

	text, err := h.uc.Fetch(c.Context(), question, label)
	switch answer.KindOf(err) {
	case answer.KindNone:
		v.Answer = text
		v.Answered = true
		log.Info("answer fetched", "answer_len", len([]rune(text)))
	case answer.KindValidation:
		v.Warning = msgEmptyQuestion
	case answer.KindClientUnavailable:
		v.Error = fmt.Sprintf(msgClientUnavailable, err)
		log.Error("llm client unavailable", "error", err)
	default:
		v.Error = fmt.Sprintf(msgRequestFailed, err)
		log.Error("llm request failed", "error", err)
	}
	return c.Render("index", v)
}
