package summarizer

import (
	"strings"
	"testing"
	"time"

	"github.com/user/memecanvas/pkg/meme"
	"github.com/user/memecanvas/pkg/mocks"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Template: TemplateInfo{
			ID:      "drake",
			Natural: meme.Size{Width: 1200, Height: 1200},
			Display: meme.Size{Width: 600, Height: 600},
		},
		Captions: CaptionInfo{
			Mode:     meme.ModeFree,
			FontSize: 48,
			TopText:  "top",
			Items: []meme.FreeText{
				{ID: 0, Text: "a|b", X: 100, Y: 120},
			},
		},
		Output: OutputInfo{
			Path:   "out/meme-1.png",
			Width:  600,
			Height: 600,
		},
		Timing: TimingInfo{
			LoadMs:  15,
			TotalMs: 42,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Render Summary",
		"2024-01-15 10:30:00",
		"| Template | drake |",
		"| Source | 1200x1200 |",
		"| Canvas Size | 600x600 |",
		"| Mode | free |",
		"| Font Size | 48 px |",
		"| Top Text | top |",
		"| Bottom Text | None |",
		`| 0 | a\|b | 100 | 120 |`,
		"| File | out/meme-1.png |",
		"| Load Time | 15 ms |",
		"| Render Time | 42 ms |",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_Format_Placeholder(t *testing.T) {
	summary := sampleSummary()
	summary.Template.Placeholder = true

	result := NewMarkdownFormatter().Format(summary)

	if !strings.Contains(result, "| Source | Placeholder |") {
		t.Error("expected placeholder source")
	}
	if strings.Contains(result, "1200x1200") {
		t.Error("expected no natural size for a placeholder")
	}
}

func TestMarkdownFormatter_Format_NoFreeTexts(t *testing.T) {
	summary := sampleSummary()
	summary.Captions.Items = nil

	result := NewMarkdownFormatter().Format(summary)

	if strings.Contains(result, "| # |") {
		t.Error("expected no caption table without free captions")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Render Summary": "レンダリングサマリー",
			"Template":       "テンプレート",
			"None":           "なし",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	formatter := NewMarkdownFormatter(WithTranslator(translator))
	result := formatter.Format(sampleSummary())

	if !strings.Contains(result, "レンダリングサマリー") {
		t.Error("expected translated 'Render Summary'")
	}
	if !strings.Contains(result, "| テンプレート | drake |") {
		t.Error("expected translated 'Template'")
	}
	if !strings.Contains(result, "なし") {
		t.Error("expected translated 'None'")
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	formatter := NewMarkdownFormatter(WithVersion("v1.2.0"))

	result := formatter.Format(sampleSummary())

	if !strings.Contains(result, "memecanvas v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string { return "summary of " + s.Template.ID })
	writer := NewWriter(formatter, fs)

	if err := writer.Write("reports/summary.md", sampleSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok, _ := fs.Exists("reports"); !ok {
		t.Error("expected parent directory to be created")
	}
	data, err := fs.ReadFile("reports/summary.md")
	if err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
	if string(data) != "summary of drake" {
		t.Errorf("unexpected content %q", data)
	}
}
