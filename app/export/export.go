package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/shborse/Task-Manager/app/models"
)

// ContentType returns the MIME type for a supported format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "csv":
		return "text/csv"
	case "pdf":
		return "application/pdf"
	}
	return "application/json"
}

// Export renders a user's tasks as json, csv or pdf.
func Export(username string, tasks []models.Task, format string) ([]byte, error) {
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, t.View())
	}

	switch strings.ToLower(format) {
	case "", "json":
		return json.MarshalIndent(views, "", "  ")
	case "csv":
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "due", "priority", "status", "time"})
		for _, v := range views {
			_ = w.Write([]string{strconv.Itoa(v.ID), v.Title, v.Due, strconv.Itoa(v.Priority), v.Status, v.Time})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Tasks for "+username)
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		if len(views) == 0 {
			pdf.MultiCell(0, 6, "No tasks yet", "0", "L", false)
		}
		for _, v := range views {
			line := fmt.Sprintf("#%d %s | due %s | priority %d | %s | added %s", v.ID, v.Title, v.Due, v.Priority, v.Status, v.Time)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown export format %q: %w", format, models.ErrInvalidInput)
}
