package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/vcr/pkg/cli/internal/output"
	"github.com/getmockd/vcr/pkg/recording"
	"github.com/getmockd/vcr/pkg/storage"
)

// ErrCassetteNotFound is returned when the named cassette has no file.
var ErrCassetteNotFound = errors.New("cassette not found")

// RecordingSummary is one row of "vcr cassette list".
type RecordingSummary struct {
	ID         string `json:"id"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	StatusCode int    `json:"statusCode"`
	Duration   string `json:"duration"`
}

func newCassetteCmd(flags *globalFlags) *cobra.Command {
	cassetteCmd := &cobra.Command{
		Use:   "cassette",
		Short: "Inspect recorded cassettes",
	}

	listCmd := &cobra.Command{
		Use:   "list NAME",
		Short: "List the recordings in a cassette",
		Example: `  # List the interactions recorded in testdata/cassettes/users.yaml
  vcr cassette list users

  # Read a JSON cassette from another directory
  vcr cassette list users --storage json --cassette-path ./fixtures`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openCassette(args[0])
			if err != nil {
				return err
			}

			recs := store.Recordings()
			rows := make([]RecordingSummary, 0, len(recs))
			for _, rec := range recs {
				rows = append(rows, RecordingSummary{
					ID:         rec.ID,
					Method:     rec.Request.Method,
					URL:        rec.Request.URL,
					StatusCode: rec.Response.StatusCode,
					Duration:   rec.DurationString(),
				})
			}

			if flags.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), rows)
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No recordings in %s\n", store.Path())
				return nil
			}
			tw := output.Table(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(tw, "ID\tMETHOD\tURL\tSTATUS\tDURATION")
			for _, row := range rows {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					row.ID, row.Method, row.URL, row.StatusCode, row.Duration)
			}
			return tw.Flush()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show NAME ID",
		Short: "Show one recording from a cassette",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openCassette(args[0])
			if err != nil {
				return err
			}

			rec, ok := findRecording(store.Recordings(), args[1])
			if !ok {
				return fmt.Errorf("recording %q not found in %s", args[1], store.Path())
			}

			if flags.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), rec)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rec); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cassetteCmd.AddCommand(listCmd, showCmd)
	return cassetteCmd
}

// openCassette opens an existing cassette with the configured storage.
func (f *globalFlags) openCassette(name string) (storage.Storage, error) {
	_, cfg, err := f.resolve()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.CassettePath()
	if err != nil {
		return nil, err
	}
	store, err := cfg.Storage()(dir, name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(store.Path()); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCassetteNotFound, store.Path())
	}
	return store, nil
}

// findRecording matches id exactly or as a unique prefix.
func findRecording(recs []recording.Recording, id string) (recording.Recording, bool) {
	var found []recording.Recording
	for _, rec := range recs {
		if rec.ID == id {
			return rec, true
		}
		if id != "" && strings.HasPrefix(rec.ID, id) {
			found = append(found, rec)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return recording.Recording{}, false
}
