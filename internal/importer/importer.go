// Package importer bulk-loads labeled vocabulary images from a spreadsheet.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"kidsedu/internal/domain"
	"kidsedu/internal/dto"

	"github.com/xuri/excelize/v2"
)

// ItemImporter stores one labeled image.
type ItemImporter interface {
	ImportItem(ctx context.Context, upload dto.ImageUpload, label string) (*domain.VocabularyItem, error)
}

// Config defines the import configuration
type Config struct {
	FilePath    string // .xlsx or .csv file
	SheetName   string // xlsx sheet, the first one when empty
	ImageColumn string // column with the image path
	LabelColumn string // column with the word
	StartRow    int    // 1-based, rows above it are headers
	BaseDir     string // relative image paths are resolved here, the file's directory when empty
}

// DefaultConfig returns the default import configuration
func DefaultConfig() Config {
	return Config{
		ImageColumn: "A",
		LabelColumn: "B",
		StartRow:    2,
	}
}

// Result holds the result of an import run
type Result struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// Import reads every row of the file and stores its image with its label.
// Row failures are collected in the result. Only an unreadable file or a
// cancelled context aborts the run.
func Import(ctx context.Context, cfg Config, importer ItemImporter) (*Result, error) {
	imageIdx, err := columnIndex(cfg.ImageColumn)
	if err != nil {
		return nil, err
	}
	labelIdx, err := columnIndex(cfg.LabelColumn)
	if err != nil {
		return nil, err
	}

	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = filepath.Dir(cfg.FilePath)
	}

	result := &Result{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		imagePath := cell(row, imageIdx)
		label := cell(row, labelIdx)
		if imagePath == "" && label == "" {
			continue
		}

		result.TotalProcessed++
		if imagePath == "" || label == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: image path and label are both required", i+1))
			continue
		}

		upload, err := loadImage(resolve(baseDir, imagePath))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		if _, err := importer.ImportItem(ctx, upload, label); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

func readRows(cfg Config) ([][]string, error) {
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		return readCSV(cfg.FilePath)
	}
	return readExcel(cfg.FilePath, cfg.SheetName)
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func loadImage(path string) (dto.ImageUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.ImageUpload{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return dto.ImageUpload{}, fmt.Errorf("image %s is empty", path)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return dto.ImageUpload{}, fmt.Errorf("%s is not an image (%s)", path, contentType)
	}

	return dto.ImageUpload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// columnIndex converts a column name like "B" to a 0-based index.
func columnIndex(column string) (int, error) {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", column, err)
	}
	return n - 1, nil
}
