package repository

import (
	"testing"
	"time"

	"github.com/tieubaoca/pdf-insight-be/types"
)

func TestNormalizeDocument_FillsMissingFields(t *testing.T) {
	doc := &types.PdfDocument{ID: "64f1c2d3e4a5b6c7d8e9f0a1"}
	NormalizeDocument(doc)

	if doc.PdfName != "unknown.pdf" {
		t.Fatalf("expected placeholder name, got %q", doc.PdfName)
	}
	if doc.UploadTime.IsZero() {
		t.Fatalf("expected upload time to be defaulted")
	}
}

func TestNormalizeDocument_KeepsPresentFields(t *testing.T) {
	uploaded := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := &types.PdfDocument{
		ID:         "64f1c2d3e4a5b6c7d8e9f0a1",
		PdfName:    "notes.pdf",
		UploadTime: uploaded,
		Text:       "Hello World",
	}
	NormalizeDocument(doc)

	if doc.PdfName != "notes.pdf" {
		t.Fatalf("name changed: %q", doc.PdfName)
	}
	if !doc.UploadTime.Equal(uploaded) {
		t.Fatalf("upload time changed: %v", doc.UploadTime)
	}
	if doc.Text != "Hello World" {
		t.Fatalf("text changed: %q", doc.Text)
	}
}
