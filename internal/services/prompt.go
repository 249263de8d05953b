package services

import (
	"fmt"
	"strings"

	"careercoach/dashboard-api/internal/models"
)

// critiqueSystemInstruction establishes the advisor persona. When multiple
// postings are present the model is asked to separate common strengths from
// per-posting optimization tips.
const critiqueSystemInstruction = "あなたはプロの転職エージェントです。求人票(JD)に合わせて職務経歴書・履歴書を添削し、採用担当者の目に留まる内容にブラッシュアップしてください。複数求人がある場合は、各求人に共通してアピールできる点と、求人ごとの最適化のヒントを分けて示してください。"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (pb *PromptBuilder) SystemInstruction() string {
	return critiqueSystemInstruction
}

// BuildCritiquePrompt creates the user message for a document critique. It is
// a pure function of its inputs: identical payloads yield byte-identical
// prompts.
func (pb *PromptBuilder) BuildCritiquePrompt(career, resume *models.FileInfo, jds []string) string {
	var fileLines []string
	if career != nil && career.Name != "" {
		fileLines = append(fileLines, fmt.Sprintf("職務経歴書: %s (%.1f KB)", career.Name, float64(career.Size)/1024))
	}
	if resume != nil && resume.Name != "" {
		fileLines = append(fileLines, fmt.Sprintf("履歴書: %s (%.1f KB)", resume.Name, float64(resume.Size)/1024))
	}
	fileSummary := strings.Join(fileLines, "\n")

	sections := make([]string, 0, len(jds))
	for i, text := range jds {
		sections = append(sections, fmt.Sprintf("【求人%d】\n%s", i+1, text))
	}
	jdBlock := strings.Join(sections, "\n\n")

	return fmt.Sprintf(
		"アップロードされた書類（現時点ではファイル名・サイズのみ利用）:\n%s\n\n---\n\n求人票（複数）:\n%s",
		fileSummary, jdBlock,
	)
}
