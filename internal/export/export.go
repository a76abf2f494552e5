// Package export renders routines as markdown documents so caregivers can
// print them or convert them to PDF.
package export

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/routine"
)

//go:embed templates/routine.md.go.tmpl
var fallbackRoutineTemplate string

const fallbackTemplateName = "routine.md.go.tmpl"

type Exporter struct {
	outputDirectory string
	templatePath    string
	names           calendar.DayNames
}

// NewExporter writes rendered routines under outputDirectory. templatePath
// may point to a custom template file; when it is missing or unparsable the
// embedded template is used.
func NewExporter(outputDirectory, templatePath string, names calendar.DayNames) *Exporter {
	return &Exporter{
		outputDirectory: outputDirectory,
		templatePath:    templatePath,
		names:           names,
	}
}

type templateData struct {
	Routine    *routine.Routine
	Repetition string
	EndTime    calendar.TimeOfDay
}

// Markdown renders the routine and returns the path of the written file.
func (e *Exporter) Markdown(r *routine.Routine) (string, error) {
	tmpl, err := e.parseTemplate()
	if err != nil {
		return "", fmt.Errorf("e.parseTemplate > %w", err)
	}

	if err := os.MkdirAll(e.outputDirectory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll > %w", err)
	}

	outputPath := filepath.Join(e.outputDirectory, fileName(r.Title))
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	data := templateData{
		Routine:    r,
		Repetition: r.RepetitionDescription(e.names),
		EndTime:    r.EndTime(),
	}
	if err := tmpl.Execute(file, data); err != nil {
		return "", fmt.Errorf("tmpl.Execute > %w", err)
	}
	return outputPath, nil
}

func (e *Exporter) parseTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"inc":  func(n int) int { return n + 1 },
	}

	if e.templatePath != "" {
		if _, err := os.Stat(e.templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(e.templatePath)).
				Funcs(funcMap).
				ParseFiles(e.templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template file",
				slog.String("templatePath", e.templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackTemplateName).
		Funcs(funcMap).
		Parse(fallbackRoutineTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// fileName turns a routine title into a safe markdown file name.
func fileName(title string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		" ", "-",
	)
	name := strings.ToLower(replacer.Replace(strings.TrimSpace(title)))
	if name == "" {
		name = "routine"
	}
	return name + ".md"
}
