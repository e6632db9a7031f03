package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the memecanvas version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Template
	fmt.Fprintf(&b, "## %s\n\n", t("Template"))
	f.tableHeader(&b)
	f.row(&b, t("Template"), s.Template.ID)
	if s.Template.Placeholder {
		f.row(&b, t("Source"), t("Placeholder"))
	} else {
		f.row(&b, t("Source"), formatSize(s.Template.Natural.Width, s.Template.Natural.Height))
	}
	f.row(&b, t("Canvas Size"), formatSize(s.Template.Display.Width, s.Template.Display.Height))
	b.WriteString("\n")

	// Captions
	fmt.Fprintf(&b, "## %s\n\n", t("Captions"))
	f.tableHeader(&b)
	f.row(&b, t("Mode"), s.Captions.Mode.String())
	f.row(&b, t("Font Size"), fmt.Sprintf("%g px", s.Captions.FontSize))
	f.row(&b, t("Top Text"), orNone(t, s.Captions.TopText))
	f.row(&b, t("Bottom Text"), orNone(t, s.Captions.BottomText))
	b.WriteString("\n")

	if len(s.Captions.Items) > 0 {
		fmt.Fprintf(&b, "| # | %s | X | Y |\n", t("Text"))
		b.WriteString("|---|---|---|---|\n")
		for _, item := range s.Captions.Items {
			fmt.Fprintf(&b, "| %d | %s | %.0f | %.0f |\n", item.ID, escape(item.Text), item.X, item.Y)
		}
		b.WriteString("\n")
	}

	// Output
	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.tableHeader(&b)
	f.row(&b, t("File"), s.Output.Path)
	f.row(&b, t("Image Size"), formatSize(s.Output.Width, s.Output.Height))
	f.row(&b, t("Load Time"), fmt.Sprintf("%d ms", s.Timing.LoadMs))
	f.row(&b, t("Render Time"), fmt.Sprintf("%d ms", s.Timing.TotalMs))
	b.WriteString("\n")

	b.WriteString("---\n\n")
	if f.version != "" {
		fmt.Fprintf(&b, "%s memecanvas %s\n", t("Generated by"), f.version)
	} else {
		fmt.Fprintf(&b, "%s memecanvas\n", t("Generated by"))
	}

	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n", f.translate("Item"), f.translate("Value"))
	b.WriteString("|---|---|\n")
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", label, escape(value))
}

func formatSize(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func orNone(t func(string) string, s string) string {
	if s == "" {
		return t("None")
	}
	return s
}

// escape keeps caption text from breaking table cells.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var _ Formatter = (*MarkdownFormatter)(nil)
