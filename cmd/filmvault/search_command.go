package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search TMDB for a movie or TV title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searcher, err := ctx.newSearcher()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			response, err := searcher.SearchMulti(cmd.Context(), query, page)
			if err != nil {
				return err
			}
			if len(response.Results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No results for %q\n", query)
				return nil
			}

			rows := make([][]string, 0, len(response.Results))
			for _, result := range response.Results {
				rows = append(rows, []string{
					result.DisplayTitle(),
					result.MediaType,
					orDash(result.Year()),
					strconv.FormatInt(result.ID, 10),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Title", "Type", "Year", "TMDB ID"}, rows, 4))
			fmt.Fprintf(out, "Page %d of %d (%d results)\n", response.Page, response.TotalPages, response.TotalResults)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page to fetch")
	return cmd
}
