// Package view renders telemetry snapshots as HTML.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"

	"hostpulse/internal/domain"
)

const indexTemplate = "index.html"

//go:embed templates/*.html
var embedded embed.FS

// HTMLRenderer is parsed once at startup and is safe for concurrent use.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer loads index.html from dir, or the embedded copy when dir is empty.
func NewHTMLRenderer(dir string) (*HTMLRenderer, error) {
	var fsys fs.FS
	var pattern string

	if dir == "" {
		fsys, pattern = embedded, "templates/"+indexTemplate
	} else {
		fsys, pattern = os.DirFS(dir), indexTemplate
	}

	tmpl, err := template.New(indexTemplate).Option("missingkey=error").ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, snap domain.Snapshot) error {
	if err := r.tmpl.ExecuteTemplate(w, indexTemplate, templateData(snap)); err != nil {
		return fmt.Errorf("render %s: %w", indexTemplate, err)
	}
	return nil
}

func templateData(snap domain.Snapshot) map[string]any {
	return map[string]any{
		"uptime":       snap.Uptime,
		"memory":       snap.Memory,
		"cpu_speed":    snap.CPUSpeed,
		"disk_space":   snap.DiskSpace,
		"volumes":      snap.Volumes,
		"network_info": snap.Interfaces,
		"collected_at": snap.CollectedAt.Format("2006-01-02 15:04:05 MST"),
	}
}
