package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"careercoach/dashboard-api/internal/models"
)

const (
	msgJDRequired       = "求人票が1件以上必要です。"
	msgDocumentRequired = "職務経歴書または履歴書のファイル情報が必要です。"
	msgInvalidPayload   = "リクエストの形式が正しくありません。"
	msgAnalysisFailed   = "解析中にエラーが発生しました。"
)

// CritiqueService turns a submission payload into one prompt, makes a single
// upstream call and relays the generated text. Stateless; safe for
// concurrent, independent calls.
type CritiqueService interface {
	Critique(ctx context.Context, req *models.CritiqueRequest) (string, error)
}

type critiqueService struct {
	chat     ChatService
	prompts  *PromptBuilder
	validate *validator.Validate
}

func NewCritiqueService(chat ChatService) CritiqueService {
	return &critiqueService{
		chat:     chat,
		prompts:  NewPromptBuilder(),
		validate: validator.New(),
	}
}

// Critique implements CritiqueService.
func (s *critiqueService) Critique(ctx context.Context, req *models.CritiqueRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", &ValidationError{Message: msgInvalidPayload}
	}

	jds := filterBlank(req.JDs)
	if len(jds) == 0 {
		return "", &ValidationError{Message: msgJDRequired}
	}

	career := req.FileInfo.Career
	resume := req.FileInfo.Resume
	if !hasName(career) && !hasName(resume) {
		return "", &ValidationError{Message: msgDocumentRequired}
	}

	prompt := s.prompts.BuildCritiquePrompt(career, resume, jds)

	result, err := s.chat.GenerateChat(ctx, s.prompts.SystemInstruction(), prompt)
	if err != nil {
		return "", &UpstreamError{Message: err.Error(), Err: err}
	}
	if result == "" {
		return "", &UpstreamError{Message: msgAnalysisFailed}
	}

	return result, nil
}

// filterBlank drops entries that are empty after trimming, preserving order.
// The original text is kept as received.
func filterBlank(jds []string) []string {
	filtered := make([]string, 0, len(jds))
	for _, text := range jds {
		if strings.TrimSpace(text) != "" {
			filtered = append(filtered, text)
		}
	}
	return filtered
}

func hasName(f *models.FileInfo) bool {
	return f != nil && f.Name != ""
}
