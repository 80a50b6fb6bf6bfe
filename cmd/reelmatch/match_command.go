package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelmatch/internal/logging"
	"reelmatch/internal/match"
)

// candidateInput is the wire shape for one ranked search result. Either a
// year or a provider date string may be supplied; the date's leading year
// wins only when no explicit year is present.
type candidateInput struct {
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Year         int    `json:"year"`
	Date         string `json:"date"`
}

type matchOutput struct {
	Query struct {
		Name string `json:"name"`
		Year int    `json:"year,omitempty"`
	} `json:"query"`
	Candidates int              `json:"candidates"`
	Match      *match.Candidate `json:"match"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var name string
	var year int
	var inputPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Pick the best candidate from a ranked provider result list",
		Long: `Read a JSON array of ranked search results and select the best match for a
query name and optional year. An exact name match (after stripping
filesystem-invalid characters) beats provider rank order, and a loose year
window beats a same-title production from the wrong decade. No surviving
candidate is a valid outcome, not an error.

Example input:
  [{"name": "Hercules", "original_name": "", "date": "2014-07-23"}]

Examples:
  reelmatch match --name "Hercules" --year 2014 --input results.json
  cat results.json | reelmatch match --name "Hercules"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cfg)
			if err != nil {
				return err
			}

			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			candidates, err := readCandidates(cmd, inputPath)
			if err != nil {
				return err
			}

			logger.Debug("running disambiguation",
				logging.String("name", name),
				logging.Int("year", year),
				logging.Int("candidates", len(candidates)))

			best, ok := match.Best(name, year, candidates)

			format := resolveOutputFormat(cfg.Output.Format, jsonOutput)
			if format == "json" {
				out := matchOutput{Candidates: len(candidates)}
				out.Query.Name = name
				out.Query.Year = year
				if ok {
					out.Match = &best
				}
				return writeJSON(cmd, out)
			}

			writer := cmd.OutOrStdout()
			rows := candidateRows(candidates, best, ok)
			if format == "plain" {
				if len(rows) > 0 {
					fmt.Fprintln(writer, renderPlain(rows))
				}
			} else {
				headers := []string{"Rank", "Name", "Original Name", "Year", ""}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft}
				fmt.Fprintln(writer, renderTable(headers, rows, aligns))
			}

			if !ok {
				fmt.Fprintln(writer, "No match.")
				return nil
			}
			fmt.Fprintf(writer, "Best match: %s%s\n", best.Name, yearSuffix(best.Year))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Query name to match against")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Target release year (0 = no constraint)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "Candidate JSON file (\"-\" for stdin)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")

	return cmd
}

func readCandidates(cmd *cobra.Command, inputPath string) ([]match.Candidate, error) {
	var reader io.Reader
	if inputPath == "" || inputPath == "-" {
		reader = cmd.InOrStdin()
	} else {
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open candidate file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var inputs []candidateInput
	if err := json.NewDecoder(reader).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}

	candidates := make([]match.Candidate, 0, len(inputs))
	for _, in := range inputs {
		year := in.Year
		if year == 0 {
			year = match.YearOf(in.Date)
		}
		candidates = append(candidates, match.Candidate{
			Name:         in.Name,
			OriginalName: in.OriginalName,
			Year:         year,
		})
	}
	return candidates, nil
}

func candidateRows(candidates []match.Candidate, best match.Candidate, ok bool) [][]string {
	rows := make([][]string, 0, len(candidates))
	marked := false
	for i, c := range candidates {
		marker := ""
		if ok && !marked && c == best {
			marker = "selected"
			marked = true
		}
		yearText := ""
		if c.Year > 0 {
			yearText = strconv.Itoa(c.Year)
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Name, c.OriginalName, yearText, marker})
	}
	return rows
}

func yearSuffix(year int) string {
	if year <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d)", year)
}
