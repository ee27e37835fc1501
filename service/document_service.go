package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/tieubaoca/pdf-insight-be/repository"
	"github.com/tieubaoca/pdf-insight-be/types"
	"github.com/tieubaoca/pdf-insight-be/utils"
)

const (
	summarySystemPrompt = "You are a helpful assistant."
	querySystemPrompt   = "You are a helpful assistant that answers questions based on a given document."

	mockSummary = "[MOCK] This is a summary for testing."
	mockAnswer  = "[MOCK] This is a answer to your question."

	// Excerpt sizes fed into the prompts. Intentionally small; changing them
	// changes answer quality and cost, not correctness.
	summaryExcerptLimit = 50
	queryExcerptLimit   = 300

	DefaultPage  = int64(1)
	DefaultLimit = int64(10)
)

type DocumentService interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*types.PdfUploadView, error)
	GetDocument(ctx context.Context, id string) (*types.PdfUploadView, error)
	PaginateDocuments(ctx context.Context, page, limit int64) ([]types.PdfUploadView, error)
	Summarize(ctx context.Context, id string) (*types.SummaryResponse, error)
	Query(ctx context.Context, id, question string) (*types.QueryResponse, error)
}

type documentService struct {
	repo      repository.DocumentRepo
	extractor ExtractService
	aiService AIService
	uploadDir string
}

func NewDocumentService(
	repo repository.DocumentRepo,
	extractor ExtractService,
	aiService AIService,
	uploadDir string,
) (DocumentService, error) {
	if err := utils.EnsureDir(uploadDir); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &documentService{
		repo:      repo,
		extractor: extractor,
		aiService: aiService,
		uploadDir: uploadDir,
	}, nil
}

// Upload saves the raw bytes, extracts the text and inserts the record. The
// three steps are independent: a failed extraction leaves the file on disk
// and inserts nothing. A second upload with the same filename overwrites the
// first on disk; the durable copy is the store record, not the file.
func (s *documentService) Upload(ctx context.Context, filename string, file io.Reader) (*types.PdfUploadView, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return nil, types.NewInvalidInput("Only PDF files are allowed")
	}

	filePath := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := utils.SaveFile(filePath, file); err != nil {
		return nil, types.NewInternal("failed to save uploaded file", err)
	}

	text, err := s.extractor.ExtractText(filePath)
	if err != nil {
		return nil, types.NewExtractionError("PDF extraction failed", err)
	}

	doc := &types.PdfDocument{
		PdfName:    filename,
		UploadTime: time.Now().UTC(),
		Text:       text,
	}
	id, err := s.repo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &types.PdfUploadView{
		DocID:      id,
		PdfName:    filename,
		UploadTime: doc.UploadTime.Format(time.RFC3339),
		Message:    "PDF uploaded successfully.",
	}, nil
}

func (s *documentService) GetDocument(ctx context.Context, id string) (*types.PdfUploadView, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	view := doc.View(true)
	return &view, nil
}

func (s *documentService) PaginateDocuments(ctx context.Context, page, limit int64) ([]types.PdfUploadView, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	docs, err := s.repo.PaginateDocuments(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	views := make([]types.PdfUploadView, 0, len(docs))
	for _, doc := range docs {
		// List items never carry the text.
		views = append(views, doc.View(false))
	}
	return views, nil
}

func (s *documentService) Summarize(ctx context.Context, id string) (*types.SummaryResponse, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, types.NewInvalidInput("No text found to summarize")
	}

	prompt := fmt.Sprintf("Summarize the following text in 2 sentences:\n\n%s",
		truncateRunes(doc.Text, summaryExcerptLimit))
	result, err := s.aiService.Complete(ctx, CompletionRequest{
		SystemPrompt: summarySystemPrompt,
		Prompt:       prompt,
		Temperature:  0.5,
		MaxTokens:    200,
		MockResponse: mockSummary,
	})
	if err != nil {
		return nil, types.NewGenerationError("LLM summarization failed", err)
	}

	return &types.SummaryResponse{
		DocID:   id,
		Summary: result.Content,
		Warning: result.Warning,
	}, nil
}

func (s *documentService) Query(ctx context.Context, id, question string) (*types.QueryResponse, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, types.NewInvalidInput("No text found in the PDF")
	}

	prompt := fmt.Sprintf(
		"Based on the following document content, answer the question accurately and concisely:\n\n%s\n\nQuestion: %s",
		truncateRunes(doc.Text, queryExcerptLimit), question)
	result, err := s.aiService.Complete(ctx, CompletionRequest{
		SystemPrompt: querySystemPrompt,
		Prompt:       prompt,
		Temperature:  0.3,
		MaxTokens:    300,
		MockResponse: mockAnswer,
	})
	if err != nil {
		return nil, types.NewGenerationError("Query failed", err)
	}

	return &types.QueryResponse{
		DocID:    id,
		Question: question,
		Answer:   result.Content,
		Warning:  result.Warning,
	}, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
