// Package kb loads the FAQ knowledge base from a tabular source.
// Row order is preserved: the entry at index i pairs with the embedding
// at index i in the similarity index.
package kb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"faq-chatbot/internal/models"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

const (
	questionColumn = "question"
	answerColumn   = "answer"
	topicColumn    = "topic"
)

func Load(path string) ([]models.KnowledgeEntry, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", ext)
	}
}

func loadCSV(path string) ([]models.KnowledgeEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}
	return entriesFromRows(records[1:], cols)
}

// columnMap holds the resolved positions of the three known columns.
// topic is -1 when the optional column is absent.
type columnMap struct {
	question int
	answer   int
	topic    int
}

func mapColumns(header []string) (columnMap, error) {
	cols := columnMap{question: -1, answer: -1, topic: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case questionColumn:
			cols.question = i
		case answerColumn:
			cols.answer = i
		case topicColumn:
			cols.topic = i
		}
	}
	if cols.question < 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, questionColumn)
	}
	if cols.answer < 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, answerColumn)
	}
	return cols, nil
}

func entriesFromRows(rows [][]string, cols columnMap) ([]models.KnowledgeEntry, error) {
	entries := make([]models.KnowledgeEntry, 0, len(rows))
	for i, row := range rows {
		entry := models.KnowledgeEntry{
			Question: cell(row, cols.question),
			Answer:   cell(row, cols.answer),
			Topic:    cell(row, cols.topic),
		}
		if entry.Question == "" {
			return nil, fmt.Errorf("row %d: empty question", i+1)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDataset
	}
	return entries, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
