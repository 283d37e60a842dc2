package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pagekit/internal/datasource"
	"pagekit/internal/logging"
	"pagekit/internal/pagination"
	"pagekit/internal/tui/pager"
)

// listOptions holds the list command's flag values.
type listOptions struct {
	page        int
	pageSize    int
	siblings    int
	boundaries  int
	sortExpr    string
	input       string
	count       int
	seed        int64
	output      string
	interactive bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a page of rows",
		Long: `List renders one page of rows along with pagination metadata and a
page-selector bar. Rows come from a CSV file (--input) or a generated
demo data set (--count/--seed). With --interactive the rows open in a
terminal browser instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	listCmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page to show (default 1)")
	listCmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "items per page")
	listCmd.Flags().IntVar(&opts.siblings, "siblings", -1, "page numbers shown on each side of the current page")
	listCmd.Flags().IntVar(&opts.boundaries, "boundaries", -1, "page numbers pinned at each end of the selector")
	listCmd.Flags().StringVarP(&opts.sortExpr, "sort", "s", "", "sort expression, e.g. 'amount:desc'")
	listCmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV file to read rows from (name,category,amount)")
	listCmd.Flags().IntVar(&opts.count, "count", 95, "number of demo rows to generate when --input is not set")
	listCmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for generated demo rows")
	listCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json, or yaml")
	listCmd.Flags().BoolVar(&opts.interactive, "interactive", false, "browse pages in an interactive terminal UI")

	return listCmd
}

// params builds pagination parameters from flags, falling back to the
// loaded configuration for anything left unset.
func (o *listOptions) params() pagination.Params {
	p := pagination.Params{
		Page:       o.page,
		PageSize:   o.pageSize,
		Siblings:   o.siblings,
		Boundaries: o.boundaries,
		Sort:       o.sortExpr,
	}
	if p.PageSize == 0 {
		p.PageSize = cfg.Defaults.PageSize
	}
	if p.Siblings < 0 {
		p.Siblings = cfg.Defaults.Siblings
	}
	if p.Boundaries < 0 {
		p.Boundaries = cfg.Defaults.Boundaries
	}
	return p.Normalize()
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	params := opts.params()
	if err := params.Validate(); err != nil {
		return err
	}

	rows, err := loadRows(opts)
	if err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug().
		Int("rows", len(rows)).
		Int("page", params.Page).
		Int("page_size", params.PageSize).
		Msg("loaded rows")

	if params.Sort != "" {
		rows, err = sortRows(rows, params.Sort)
		if err != nil {
			return err
		}
	}

	if opts.interactive {
		return runInteractive(cmd, rows, params)
	}

	format := opts.output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return renderPage(cmd.OutOrStdout(), rows, params, format)
}

func loadRows(opts *listOptions) ([]datasource.Row, error) {
	if opts.input == "" {
		return datasource.Generate(opts.count, opts.seed), nil
	}

	f, err := os.Open(opts.input)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	return datasource.ReadCSV(f)
}

func sortRows(rows []datasource.Row, expr string) ([]datasource.Row, error) {
	field, order, err := pagination.ParseSort(expr)
	if err != nil {
		return nil, err
	}

	sorter := datasource.NewSorter()
	if !sorter.IsValidField(field) {
		return nil, fmt.Errorf("unknown sort field %q, valid fields: %s",
			field, strings.Join(sorter.ValidFields(), ", "))
	}
	return sorter.Sort(rows, field, order), nil
}

func runInteractive(cmd *cobra.Command, rows []datasource.Row, params pagination.Params) error {
	if !isTerminal(os.Stdout) {
		return errors.New("interactive mode requires a terminal, pipe through --output instead")
	}

	m, err := pager.New("pagekit", rows, pagination.Config{
		PageSize:   params.PageSize,
		Siblings:   params.Siblings,
		Boundaries: params.Boundaries,
	})
	if err != nil {
		return err
	}

	logger.Debug().Int("rows", len(rows)).Msg("starting interactive pager")
	_, err = tea.NewProgram(m.WithPage(params.Page), tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}
