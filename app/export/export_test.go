package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shborse/Task-Manager/app/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Buy milk", Due: models.DefaultDue, Priority: 1, Status: "Pending", CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Call, mum", Due: models.DefaultDue, Priority: 3, Status: "Done", CreatedAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)},
	}
}

func TestExportJSON(t *testing.T) {
	b, err := Export("alice", sampleTasks(), "json")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var got []models.TaskView
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[1].Title != "Call, mum" || got[0].Time != "2025-06-01 09:00:00" {
		t.Fatalf("unexpected export %+v", got)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	b, err := Export("bob", nil, "")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected empty array, got %s", b)
	}
}

func TestExportCSV(t *testing.T) {
	b, err := Export("alice", sampleTasks(), "CSV")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "id" || rows[2][1] != "Call, mum" || rows[2][3] != "3" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestExportPDF(t *testing.T) {
	b, err := Export("alice", sampleTasks(), "pdf")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", b[:min(len(b), 16)])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := Export("alice", nil, "xml"); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContentType(t *testing.T) {
	cases := map[string]string{"": "application/json", "json": "application/json", "csv": "text/csv", "PDF": "application/pdf"}
	for format, want := range cases {
		if got := ContentType(format); got != want {
			t.Errorf("%q: got %s, want %s", format, got, want)
		}
	}
}
