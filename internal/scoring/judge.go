package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arvindh/recallo/internal/llm"
)

const judgeSystemPrompt = `You are a strict but fair grader for flashcard study.
The learner answers in their own words; judge whether their answer conveys
the same meaning as the expected answer. Accept paraphrases and any of the
listed alternative answers. Do not reward keyword matching without meaning.

Verdicts:
- "correct": the answer conveys the expected meaning and covers the keypoints
- "almost": the meaning is right but imprecise, or a minor keypoint is thin
- "missing": the core idea is present but one or more keypoints are absent
- "incorrect": the answer is wrong or off-topic

Set score, cosine and coverage between 0 and 1. List every keypoint the
answer failed to cover in missingKeypoints, verbatim. Keep feedback to one
or two sentences addressed to the learner.`

// JudgeSchema constrains the judge's JSON output.
var JudgeSchema = &llm.Schema{
	Name:        "answer-judgment",
	Description: "Semantic judgment of a flashcard answer",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"verdict", "score", "cosine", "coverage", "missingKeypoints"},
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"incorrect", "missing", "almost", "correct"},
			},
			"score":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"cosine":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"coverage": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"missingKeypoints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"feedback": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// Judge scores answers by delegating the judgment to an LLM provider.
// It is the fallback backend for setups without the embedding sidecar.
type Judge struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

var _ Scorer = (*Judge)(nil)

// NewJudge creates an LLM-backed scorer.
func NewJudge(provider llm.Provider) *Judge {
	return &Judge{
		provider:  provider,
		maxTokens: 1024,
	}
}

type judgeOutput struct {
	Verdict          string   `json:"verdict"`
	Score            float64  `json:"score"`
	Cosine           float64  `json:"cosine"`
	Coverage         float64  `json:"coverage"`
	MissingKeypoints []string `json:"missingKeypoints"`
	Feedback         string   `json:"feedback"`
}

// Score judges one answer. The returned record echoes the card's prompt,
// expected answer and keypoints so the history view is self-contained.
func (j *Judge) Score(ctx context.Context, req Request) (*AttemptRecord, error) {
	ctx = llm.WithPurpose(ctx, "score")

	resp, err := j.provider.Generate(ctx, llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildJudgeUserMessage(req)},
		},
		Schema:    JudgeSchema,
		MaxTokens: j.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("judge answer: %w", err)
	}

	var out judgeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse judgment: %w", err)
	}

	verdict := Verdict(out.Verdict)
	if !verdict.Valid() {
		return nil, fmt.Errorf("judge returned unknown verdict %q", out.Verdict)
	}

	return &AttemptRecord{
		ID:               uuid.New().String(),
		CardID:           req.CardID,
		UserAnswer:       req.UserAnswer,
		Verdict:          verdict,
		Score:            clamp01(out.Score),
		Cosine:           clamp01(out.Cosine),
		Coverage:         clamp01(out.Coverage),
		MissingKeypoints: out.MissingKeypoints,
		Feedback:         out.Feedback,
		Prompt:           req.Prompt,
		ExpectedAnswer:   req.ExpectedAnswer,
		Keypoints:        req.Keypoints,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

func buildJudgeUserMessage(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", req.Prompt)
	fmt.Fprintf(&b, "Expected answer: %s\n", req.ExpectedAnswer)
	for _, alt := range req.AlternativeAnswers {
		fmt.Fprintf(&b, "Also acceptable: %s\n", alt)
	}
	if len(req.Keypoints) > 0 {
		b.WriteString("Keypoints the answer should cover:\n")
		for _, kp := range req.Keypoints {
			fmt.Fprintf(&b, "- %s\n", kp)
		}
	}
	fmt.Fprintf(&b, "\nLearner's answer: %s\n", req.UserAnswer)
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
