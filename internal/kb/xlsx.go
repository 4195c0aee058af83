package kb

import (
	"fmt"

	"faq-chatbot/internal/models"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a workbook using the same header
// contract as the CSV loader.
func loadXLSX(path string) ([]models.KnowledgeEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}
	return entriesFromRows(rows[1:], cols)
}
