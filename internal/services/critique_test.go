package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercoach/dashboard-api/internal/models"
)

type fakeChat struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeChat) GenerateChat(ctx context.Context, systemInstruction, userContent string) (string, error) {
	f.calls++
	f.lastSystem = systemInstruction
	f.lastUser = userContent
	return f.response, f.err
}

func validRequest() *models.CritiqueRequest {
	return &models.CritiqueRequest{
		FileInfo: models.FileInfoMap{
			Career: &models.FileInfo{Name: "resume.pdf", Size: 102400, Type: "application/pdf"},
		},
		JDs: []string{"JD text A"},
	}
}

func TestCritique_Success(t *testing.T) {
	chat := &fakeChat{response: "添削結果です。"}
	svc := NewCritiqueService(chat)

	result, err := svc.Critique(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "添削結果です。", result)
	assert.Equal(t, 1, chat.calls)
	assert.Equal(t, critiqueSystemInstruction, chat.lastSystem)
	assert.Contains(t, chat.lastUser, "resume.pdf")
	assert.Contains(t, chat.lastUser, "【求人1】\nJD text A")
}

func TestCritique_MissingJDs(t *testing.T) {
	chat := &fakeChat{response: "unused"}
	svc := NewCritiqueService(chat)

	req := validRequest()
	req.JDs = nil

	_, err := svc.Critique(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgJDRequired, validationErr.Message)
	assert.Equal(t, 0, chat.calls)
}

func TestCritique_BlankJDsFilteredOut(t *testing.T) {
	chat := &fakeChat{response: "unused"}
	svc := NewCritiqueService(chat)

	req := validRequest()
	req.JDs = []string{"   ", "\n\t"}

	_, err := svc.Critique(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgJDRequired, validationErr.Message)
	assert.Equal(t, 0, chat.calls)
}

func TestCritique_MissingDocuments(t *testing.T) {
	chat := &fakeChat{response: "unused"}
	svc := NewCritiqueService(chat)

	req := &models.CritiqueRequest{JDs: []string{"JD text A"}}

	_, err := svc.Critique(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgDocumentRequired, validationErr.Message)
	assert.Equal(t, 0, chat.calls)
}

func TestCritique_UnnamedDocumentCountsAsAbsent(t *testing.T) {
	chat := &fakeChat{response: "unused"}
	svc := NewCritiqueService(chat)

	req := &models.CritiqueRequest{
		FileInfo: models.FileInfoMap{Career: &models.FileInfo{Name: ""}},
		JDs:      []string{"JD text A"},
	}

	_, err := svc.Critique(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, msgDocumentRequired, validationErr.Message)
}

func TestCritique_TooManyJDs(t *testing.T) {
	chat := &fakeChat{response: "unused"}
	svc := NewCritiqueService(chat)

	req := validRequest()
	req.JDs = []string{"1", "2", "3", "4", "5", "6"}

	_, err := svc.Critique(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, chat.calls)
}

func TestCritique_UpstreamFailure(t *testing.T) {
	chat := &fakeChat{err: errors.New("quota exceeded")}
	svc := NewCritiqueService(chat)

	_, err := svc.Critique(context.Background(), validRequest())

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Contains(t, upstreamErr.Message, "quota exceeded")
}

func TestCritique_EmptyUpstreamContent(t *testing.T) {
	chat := &fakeChat{response: ""}
	svc := NewCritiqueService(chat)

	_, err := svc.Critique(context.Background(), validRequest())

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, msgAnalysisFailed, upstreamErr.Message)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, HTTPStatus(&ValidationError{Message: "bad"}))
	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(&UpstreamError{Message: "boom"}))
	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("other")))
}
