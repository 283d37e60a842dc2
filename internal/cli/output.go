package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"pagekit/internal/datasource"
	"pagekit/internal/pagination"
)

// tabPadding is the padding between tabwriter columns.
const tabPadding = 2

// PageEnvelope is the structured output for one page: the items plus the
// pagination metadata a consumer needs to request adjacent pages.
type PageEnvelope struct {
	Items      []datasource.Row `json:"items"      yaml:"items"`
	Pagination pagination.Meta  `json:"pagination" yaml:"pagination"`
}

// renderPage writes one page of rows to w in the given format. The
// requested page is clamped into range rather than rejected, so a stale
// page number from a shell history still yields output.
func renderPage(w io.Writer, rows []datasource.Row, params pagination.Params, format string) error {
	ctrl, err := pagination.NewController(pagination.Config{
		TotalItems: len(rows),
		PageSize:   params.PageSize,
		Siblings:   params.Siblings,
		Boundaries: params.Boundaries,
	})
	if err != nil {
		return err
	}
	ctrl.GoTo(params.Page)

	from, to := ctrl.PageBounds()
	envelope := PageEnvelope{
		Items:      rows[from:to],
		Pagination: ctrl.Meta(),
	}

	switch format {
	case "table":
		return renderTable(w, envelope, ctrl.Markers())
	case "json":
		return renderJSON(w, envelope)
	case "yaml":
		return renderYAML(w, envelope)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// renderTable writes an aligned plain-text table followed by a selector
// line such as "1 … 4 [5] 6 … 10" with the current page bracketed.
func renderTable(w io.Writer, envelope PageEnvelope, markers []pagination.Marker) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tAMOUNT\tCREATED")
	for _, row := range envelope.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			row.ID, row.Name, row.Category, row.Amount,
			row.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatMarkers(markers, envelope.Pagination.CurrentPage))
	fmt.Fprintf(w, "page %d of %d, %d items\n",
		envelope.Pagination.CurrentPage,
		envelope.Pagination.TotalPages,
		envelope.Pagination.TotalItems)
	return nil
}

// formatMarkers renders a marker sequence as a single selector line.
func formatMarkers(markers []pagination.Marker, current int) string {
	var out string
	for i, marker := range markers {
		if i > 0 {
			out += " "
		}
		if !marker.IsEllipsis() && marker.Page == current {
			out += "[" + marker.String() + "]"
			continue
		}
		out += marker.String()
	}
	return out
}

func renderJSON(w io.Writer, envelope PageEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(envelope)
}

func renderYAML(w io.Writer, envelope PageEnvelope) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(envelope)
}
