package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"filmvault/internal/catalog"
	"filmvault/internal/scan"
	"filmvault/internal/services"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var (
		autoDetect     bool
		collectionName string
	)

	cmd := &cobra.Command{
		Use:   "scan <image-file>",
		Short: "Identify a disc from a photographed cover",
		Long: `Scan runs the cover image through enhancement, OCR, and title scoring,
then searches TMDB for the detected title. With auto-detect enabled a
high-confidence match is selected outright; otherwise the ranked candidates
are listed for manual choice. Use --collection to file an auto-selected
match straight into a collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("auto-detect") {
				autoDetect = cfg.Scanner.AutoDetect
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image %q: %w", args[0], err)
			}

			scanner, err := ctx.newScanner()
			if err != nil {
				return err
			}

			outcome, err := scanner.ScanCoverImage(cmd.Context(), raw, scan.Options{AutoDetect: autoDetect})
			if err != nil {
				if hint := services.UserMessage(err); hint != "" {
					return fmt.Errorf("%w\n%s", err, hint)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Detected title query: %q\n", outcome.Query)

			if outcome.AutoSelected != nil {
				selected := outcome.AutoSelected
				fmt.Fprintf(out, "Auto-selected: %s (%s, %s) [tmdb:%d]\n",
					selected.DisplayTitle(), selected.MediaType, orDash(selected.Year()), selected.ID)
				if collectionName != "" {
					return ctx.withStore(func(store *catalog.Store) error {
						collection, err := requireCollection(store, cmd, collectionName)
						if err != nil {
							return err
						}
						item, err := store.AddItem(cmd.Context(), catalog.NewItem(collection.ID, *selected, nil))
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "Added to %s as %s\n", collection.Name, item.ID)
						return nil
					})
				}
				return nil
			}

			rows := make([][]string, 0, len(outcome.Candidates))
			for i, candidate := range outcome.Candidates {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					candidate.DisplayTitle(),
					candidate.MediaType,
					orDash(candidate.Year()),
					strconv.FormatInt(candidate.ID, 10),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Title", "Type", "Year", "TMDB ID"}, rows, 1, 5))
			fmt.Fprintln(out, "Add one with: filmvault item add --collection <name> --tmdb-id <id> --type <movie|tv>")
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoDetect, "auto-detect", true, "Auto-select a high-confidence match")
	cmd.Flags().StringVar(&collectionName, "collection", "", "Collection to file an auto-selected match into")
	return cmd
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
