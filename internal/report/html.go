package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/leommxj/LawComparator/internal/diff"
)

//go:embed templates/report.gohtml
var templateFS embed.FS

var reportTmpl = template.Must(template.New("report.gohtml").Funcs(template.FuncMap{
	"percent": func(f float64) string {
		return fmt.Sprintf("%.0f%%", f*100)
	},
	"isInsert": func(op diff.Op) bool { return op == diff.Insert },
	"isDelete": func(op diff.Op) bool { return op == diff.Delete },
}).ParseFS(templateFS, "templates/report.gohtml"))

// RenderHTML writes the report document to w.
func RenderHTML(w io.Writer, r *Report) error {
	if err := reportTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteHTML renders the report to a file.
func WriteHTML(r *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file %s: %w", path, err)
	}
	if err := RenderHTML(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
