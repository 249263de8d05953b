package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"careercoach/dashboard-api/internal/models"
)

func TestBuildCritiquePrompt_BothDocuments(t *testing.T) {
	pb := NewPromptBuilder()

	career := &models.FileInfo{Name: "keireki.pdf", Size: 102400, Type: "application/pdf"}
	resume := &models.FileInfo{Name: "rirekisho.docx", Size: 49664, Type: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"}

	got := pb.BuildCritiquePrompt(career, resume, []string{"text one", "text two"})

	want := "アップロードされた書類（現時点ではファイル名・サイズのみ利用）:\n" +
		"職務経歴書: keireki.pdf (100.0 KB)\n" +
		"履歴書: rirekisho.docx (48.5 KB)\n" +
		"\n---\n\n" +
		"求人票（複数）:\n" +
		"【求人1】\ntext one\n\n【求人2】\ntext two"
	assert.Equal(t, want, got)
}

func TestBuildCritiquePrompt_OmitsAbsentRole(t *testing.T) {
	pb := NewPromptBuilder()

	career := &models.FileInfo{Name: "keireki.pdf", Size: 2048}

	got := pb.BuildCritiquePrompt(career, nil, []string{"jd"})

	assert.Contains(t, got, "職務経歴書: keireki.pdf (2.0 KB)")
	assert.NotContains(t, got, "履歴書")
}

func TestBuildCritiquePrompt_OmitsUnnamedRole(t *testing.T) {
	pb := NewPromptBuilder()

	career := &models.FileInfo{Name: "keireki.pdf", Size: 2048}
	unnamed := &models.FileInfo{Name: "", Size: 512}

	got := pb.BuildCritiquePrompt(career, unnamed, []string{"jd"})

	assert.Contains(t, got, "職務経歴書: keireki.pdf (2.0 KB)")
	assert.NotContains(t, got, "履歴書")
}

func TestBuildCritiquePrompt_NumbersPostingsInOrder(t *testing.T) {
	pb := NewPromptBuilder()

	got := pb.BuildCritiquePrompt(nil, &models.FileInfo{Name: "r.pdf"}, []string{"first", "second", "third"})

	first := "【求人1】\nfirst"
	second := "【求人2】\nsecond"
	third := "【求人3】\nthird"
	assert.Contains(t, got, first)
	assert.Contains(t, got, second)
	assert.Contains(t, got, third)
	assert.Less(t, strings.Index(got, first), strings.Index(got, second))
	assert.Less(t, strings.Index(got, second), strings.Index(got, third))
}

func TestBuildCritiquePrompt_Deterministic(t *testing.T) {
	pb := NewPromptBuilder()

	career := &models.FileInfo{Name: "a.pdf", Size: 1234}
	jds := []string{"jd one", "jd two"}

	assert.Equal(t,
		pb.BuildCritiquePrompt(career, nil, jds),
		pb.BuildCritiquePrompt(career, nil, jds),
	)
}
