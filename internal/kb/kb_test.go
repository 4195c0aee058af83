package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "question,answer,topic\njam buka toko,Kami buka 09:00-18:00,Jam Operasional\nada garansi,Garansi 30 hari,Garansi Servis\n")

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "jam buka toko", entries[0].Question)
	assert.Equal(t, "Kami buka 09:00-18:00", entries[0].Answer)
	assert.Equal(t, "Jam Operasional", entries[0].Topic)
	assert.Equal(t, "Garansi Servis", entries[1].Topic)
}

func TestLoadCSVTopicOptional(t *testing.T) {
	path := writeCSV(t, "question,answer\njam buka toko,Kami buka 09:00-18:00\n")

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Topic)
}

func TestLoadCSVHeaderCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "Question,Answer,Topic\njam buka,09:00,Jam\n")

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jam buka", entries[0].Question)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeCSV(t, "question,topic\njam buka toko,Jam Operasional\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadCSVNoRows(t *testing.T) {
	path := writeCSV(t, "question,answer,topic\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoadCSVEmptyQuestion(t *testing.T) {
	path := writeCSV(t, "question,answer\n,jawaban tanpa pertanyaan\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadPreservesRowOrder(t *testing.T) {
	path := writeCSV(t, "question,answer\nq1,a1\nq2,a2\nq3,a3\n")

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, want := range []string{"q1", "q2", "q3"} {
		assert.Equal(t, want, entries[i].Question)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported dataset format")
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"question", "answer", "topic"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"jam buka toko", "Kami buka 09:00-18:00", "Jam Operasional"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"ada garansi", "Garansi 30 hari", "Garansi Servis"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ada garansi", entries[1].Question)
	assert.Equal(t, "Garansi Servis", entries[1].Topic)
}

func TestLoadXLSXMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"question", "topic"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"jam buka", "Jam"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}
