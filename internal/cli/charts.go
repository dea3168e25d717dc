package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sgtmarmite/wtfcesko/pkg/config"
	"github.com/sgtmarmite/wtfcesko/pkg/pipeline"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/render/sitemap"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// chartsCommand groups the chart inspection subcommands.
func (c *CLI) chartsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Inspect the charts on the page",
	}

	cmd.AddCommand(c.chartsListCommand())
	cmd.AddCommand(c.chartsShowCommand())
	cmd.AddCommand(c.chartsBrowseCommand())
	cmd.AddCommand(c.chartsSitemapCommand())

	return cmd
}

func (c *CLI) chartsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every chart in page order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), chartTable(reg).Render())
			return nil
		},
	}
}

func (c *CLI) chartsShowCommand() *cobra.Command {
	var (
		mobile     bool
		width      int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print a chart's Chart.js configuration as JSON",
		Long: `Print a chart's Chart.js configuration as JSON.

--width picks the variant the page would mount for a viewport of that many
CSS pixels, using site.breakpoint from the config file.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeChartKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			device := style.Desktop
			if mobile {
				device = style.Mobile
			}
			if cmd.Flags().Changed("width") {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				device = style.DeviceForWidth(width, cfg.Site.Breakpoint)
			}
			return showChart(cmd.OutOrStdout(), reg, args[0], device)
		},
	}

	cmd.Flags().BoolVar(&mobile, "mobile", false, "print the mobile variant")
	cmd.Flags().IntVar(&width, "width", 0, "viewport width in CSS pixels; overrides --mobile")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
	return cmd
}

func (c *CLI) chartsBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse charts interactively",
		Long: `Browse charts interactively.

Pick a chart to print its configuration; press m to toggle between the
desktop and mobile variants before selecting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), cmd.OutOrStdout(), reg)
		},
	}
}

func (c *CLI) chartsSitemapCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		dot      bool
	)

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Render the acts → charts → fixtures diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			return runSitemap(cmd.Context(), cmd.OutOrStdout(), reg, output, sitemap.Options{Detailed: detailed}, dot)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", pipeline.SitemapFile, "output file, - for stdout")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show chart shape and source")
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of SVG")
	return cmd
}

// =============================================================================
// Implementations
// =============================================================================

// chartTable lays the registry out as a table in page order.
func chartTable(reg *registry.Registry) *table.Table {
	actOf := actNumbers(reg)
	rows := make([][]string, 0, reg.Len())
	for i, e := range reg.Entries() {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Key,
			strconv.Itoa(actOf[e.Key]),
			string(e.Shape),
			e.Dataset,
			e.Title,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Key", "Act", "Shape", "Dataset", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorWhite)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		})
}

// actNumbers maps each chart key to the number of the act containing it.
func actNumbers(reg *registry.Registry) map[string]int {
	m := make(map[string]int, reg.Len())
	for _, a := range reg.Acts() {
		for _, k := range a.Keys {
			m[k] = a.Number
		}
	}
	return m
}

// showChart writes the mount record for key as indented JSON.
func showChart(w io.Writer, reg *registry.Registry, key string, d style.Device) error {
	m, err := reg.Mount(key, d)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// runBrowse runs the chart picker and prints the chosen configuration.
func (c *CLI) runBrowse(ctx context.Context, w io.Writer, reg *registry.Registry) error {
	model := newChartListModel(reg)
	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return fmt.Errorf("chart browser: %w", err)
	}
	m := final.(chartListModel)
	if m.Selected == nil {
		return nil
	}
	return showChart(w, reg, m.Selected.Key, m.Device)
}

// runSitemap renders the diagram to output, or to w when output is "-".
func runSitemap(ctx context.Context, w io.Writer, reg *registry.Registry, output string, opts sitemap.Options, dot bool) error {
	var (
		data []byte
		err  error
	)
	if dot {
		data = []byte(sitemap.ToDOT(reg, opts))
	} else if data, err = sitemap.Render(ctx, reg, opts); err != nil {
		return err
	}

	if output == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Sitemap written")
	printFile(output)
	return nil
}

// completeChartKeys offers the registry keys matching the typed prefix,
// each described by its chart title.
func completeChartKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := registry.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var keys []string
	for _, e := range reg.Entries() {
		if strings.HasPrefix(e.Key, toComplete) {
			keys = append(keys, e.Key+"\t"+e.Title)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
