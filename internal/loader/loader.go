// Package loader reads the legal document corpus from disk. A missing or
// empty corpus directory is not fatal: the embedded reference corpus is
// returned instead so the service stays queryable in a degraded mode.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/models"
)

// LoadCorpus reads every supported document under dir. If the directory is
// absent or yields no text, the embedded reference corpus is returned.
func LoadCorpus(dir string) []models.Document {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("Corpus directory not readable, using reference corpus")
		return []models.Document{referenceDocument()}
	}

	var docs []models.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDocument(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable document")
			continue
		}
		if strings.TrimSpace(doc.Content) == "" {
			continue
		}
		docs = append(docs, doc)
		log.Info().Str("path", path).Int("bytes", len(doc.Content)).Msg("Loaded document")
	}

	if len(docs) == 0 {
		log.Warn().Str("dir", dir).Msg("No usable documents in corpus, using reference corpus")
		return []models.Document{referenceDocument()}
	}
	return docs
}

// LoadDocument extracts UTF-8 text from a single file.
func LoadDocument(path string) (models.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		content string
		err     error
	)
	switch ext {
	case ".pdf":
		content, err = extractPDF(path)
	case ".docx":
		content, err = extractDOCX(path)
	case ".txt", ".md":
		content, err = extractText(path)
	default:
		return models.Document{}, fmt.Errorf("unsupported file format: %s", ext)
	}
	if err != nil {
		return models.Document{}, err
	}
	return models.Document{
		Source:   filepath.Base(path),
		Content:  content,
		Metadata: map[string]string{"path": path},
	}, nil
}

func extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %v", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d: %v", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read docx: %v", err)
	}
	defer r.Close()
	return r.Editable().GetContent(), nil
}

func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func referenceDocument() models.Document {
	return models.Document{
		Source:   models.ReferenceCorpusSource,
		Content:  models.ReferenceCorpus,
		Metadata: map[string]string{"source": models.ReferenceCorpusSource},
	}
}
