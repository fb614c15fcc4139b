package api

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mtsk/calheat/heatmap"
	"github.com/mtsk/calheat/model"
)

// GetGraphParams represents parameters for rendering a heatmap graph.
type GetGraphParams struct {
	Project   string
	DateRange *model.DateRange
	Tags      *model.Tags
	WeekStart model.WeekStart
	BaseColor string
	CellType  string
	// Track auto-creates a value-1 record before rendering, turning the
	// graph URL into an access counter.
	Track bool
}

// NewGetGraphParams creates graph parameters from an HTTP request.
func NewGetGraphParams(r *http.Request) (*GetGraphParams, error) {
	project := r.PathValue("project")
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}

	query := r.URL.Query()

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		return nil, err
	}
	weekStart, err := model.NewWeekStart(query.Get("week_start"))
	if err != nil {
		return nil, err
	}

	cellType := query.Get("cell_type")
	switch cellType {
	case "", heatmap.CellRect, heatmap.CellCircle:
	default:
		return nil, fmt.Errorf("cell_type must be %q or %q", heatmap.CellRect, heatmap.CellCircle)
	}

	return &GetGraphParams{
		Project:   project,
		DateRange: dateRange,
		Tags:      model.NewTags(query.Get("tags")),
		WeekStart: weekStart,
		BaseColor: query.Get("base_color"),
		CellType:  cellType,
		Track:     query.Get("track") != "",
	}, nil
}

// graphOptions builds heatmap options from the request parameters and the
// stored per-day counts.
func (p *GetGraphParams) graphOptions(counts map[string]int) *heatmap.Options {
	opts := heatmap.NewOptions(counts, p.DateRange.From(), p.DateRange.To())
	opts.WeekStart = int(p.WeekStart)
	if p.BaseColor != "" {
		opts.BaseColor = "#" + p.BaseColor
	}
	if p.CellType != "" {
		opts.CellType = p.CellType
	}
	return opts
}

// handleGetGraph renders the activity heatmap of a project as SVG.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	params, err := NewGetGraphParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if params.Track {
		// failures must not break graph rendering
		record, err := model.NewRecord(time.Now(), params.Project, 1, params.Tags.Values())
		if err != nil {
			log.Error().Err(err).Msg("building access counter record")
		} else if err := s.store.CreateRecord(r.Context(), record); err != nil {
			log.Error().Err(err).Msg("saving access counter record")
		}
	}

	if _, err := s.store.GetProject(r.Context(), params.Project); err != nil {
		log.Error().Err(err).Str("project", params.Project).Msg("getting project")
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	counts, err := s.store.CountsByDay(r.Context(),
		params.Project, params.DateRange.From(), params.DateRange.To(), params.Tags.Values())
	if err != nil {
		log.Error().Err(err).Msg("aggregating records")
		http.Error(w, "Failed to retrieve records", http.StatusInternalServerError)
		return
	}

	svg := heatmap.RenderSVG(params.graphOptions(counts))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
{{.Widget}}
</body>
</html>
`))

// handleGetPage serves an HTML page embedding the heatmap widget.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	params, err := NewGetGraphParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := s.store.GetProject(r.Context(), params.Project)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}

	counts, err := s.store.CountsByDay(r.Context(),
		params.Project, params.DateRange.From(), params.DateRange.To(), params.Tags.Values())
	if err != nil {
		log.Error().Err(err).Msg("aggregating records")
		http.Error(w, "Failed to retrieve records", http.StatusInternalServerError)
		return
	}

	data := struct {
		Name        string
		Description string
		Widget      template.HTML
	}{
		Name:        project.Name,
		Description: project.Description,
		Widget:      template.HTML(heatmap.RenderHTML(params.graphOptions(counts))),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("rendering page")
	}
}
