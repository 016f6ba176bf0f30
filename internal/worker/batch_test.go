package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ppiankov/clearview/internal/model"
)

type mockAnalyzer struct {
	calls   int32
	failFor string
}

func (m *mockAnalyzer) AnalyzeInput(ctx context.Context, input string) (*model.Report, error) {
	atomic.AddInt32(&m.calls, 1)
	if input == m.failFor {
		return nil, errors.New("analysis failed")
	}
	return &model.Report{Status: "success", Thesis: "thesis for " + input}, nil
}

func TestProcessInputs(t *testing.T) {
	analyzer := &mockAnalyzer{}
	b := NewBatchProcessor(analyzer, 3)

	inputs := []string{"article1.txt", "article2.txt", "article3.txt"}
	results := b.ProcessInputs(context.Background(), inputs)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if atomic.LoadInt32(&analyzer.calls) != 3 {
		t.Errorf("expected 3 analyzer calls, got %d", analyzer.calls)
	}
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("unexpected error for %s: %v", r.Input, r.Error)
		}
		if r.Report == nil {
			t.Errorf("missing report for %s", r.Input)
		}
	}
}

func TestProcessInputsPartialFailure(t *testing.T) {
	analyzer := &mockAnalyzer{failFor: "bad.txt"}
	b := NewBatchProcessor(analyzer, 2)

	results := b.ProcessInputs(context.Background(), []string{"good.txt", "bad.txt"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failed, succeeded int
	for _, r := range results {
		if r.Error != nil {
			failed++
			if r.Input != "bad.txt" {
				t.Errorf("wrong input failed: %s", r.Input)
			}
		} else {
			succeeded++
		}
	}
	if failed != 1 || succeeded != 1 {
		t.Errorf("failed=%d succeeded=%d, want 1/1", failed, succeeded)
	}
}

func TestProcessInputsEmpty(t *testing.T) {
	b := NewBatchProcessor(&mockAnalyzer{}, 2)
	results := b.ProcessInputs(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.txt")
	content := strings.Join([]string{
		"# comment line",
		"https://example.com/article-one",
		"",
		"articles/local.txt",
		"https://example.com/article-one", // duplicate
		"  https://example.com/two  ",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("ReadInputsFromFile: %v", err)
	}

	want := []string{
		"https://example.com/article-one",
		"articles/local.txt",
		"https://example.com/two",
	}
	if len(inputs) != len(want) {
		t.Fatalf("inputs = %v, want %v", inputs, want)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], want[i])
		}
	}
}

func TestReadInputsFromFileMissing(t *testing.T) {
	if _, err := ReadInputsFromFile("/nonexistent/inputs.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
