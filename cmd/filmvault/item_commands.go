package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"filmvault/internal/catalog"
	"filmvault/internal/tmdb"
)

func newItemCommand(ctx *commandContext) *cobra.Command {
	itemCmd := &cobra.Command{
		Use:   "item",
		Short: "Manage items inside a collection",
	}

	itemCmd.AddCommand(newItemAddCommand(ctx))
	itemCmd.AddCommand(newItemWatchedCommand(ctx))
	itemCmd.AddCommand(newItemRateCommand(ctx))
	itemCmd.AddCommand(newItemRemoveCommand(ctx))

	return itemCmd
}

func newItemAddCommand(ctx *commandContext) *cobra.Command {
	var (
		collectionName string
		tmdbID         int64
		mediaType      string
		formats        []string
		quantity       int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a title to a collection by TMDB ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			searcher, err := ctx.newSearcher()
			if err != nil {
				return err
			}

			var result *tmdb.Result
			switch strings.ToLower(mediaType) {
			case "tv":
				result, err = searcher.GetTVDetails(cmd.Context(), tmdbID)
			case "movie", "":
				result, err = searcher.GetMovieDetails(cmd.Context(), tmdbID)
			default:
				return fmt.Errorf("type must be movie or tv, got %q", mediaType)
			}
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *catalog.Store) error {
				collection, err := requireCollection(store, cmd, collectionName)
				if err != nil {
					return err
				}
				newItem := catalog.NewItem(collection.ID, *result, formats)
				newItem.Quantity = quantity
				item, err := store.AddItem(cmd.Context(), newItem)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to %q as %s\n",
					item.Title, orDash(item.Year), collection.Name, item.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&collectionName, "collection", "", "Collection to add to")
	cmd.Flags().Int64Var(&tmdbID, "tmdb-id", 0, "TMDB identifier of the title")
	cmd.Flags().StringVar(&mediaType, "type", "movie", "Media type: movie or tv")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "Owned formats (DVD, Blu-ray, 4K)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Number of copies owned")
	_ = cmd.MarkFlagRequired("collection")
	_ = cmd.MarkFlagRequired("tmdb-id")
	return cmd
}

func newItemWatchedCommand(ctx *commandContext) *cobra.Command {
	var unwatched bool

	cmd := &cobra.Command{
		Use:   "watched <item-id>",
		Short: "Mark an item watched (or unwatched with --not)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				item, err := store.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return fmt.Errorf("item %s not found", args[0])
				}
				if err := store.SetWatched(cmd.Context(), item.ID, !unwatched); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: watched=%s\n", item.Title, yesNo(!unwatched))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&unwatched, "not", false, "Mark as unwatched instead")
	return cmd
}

func newItemRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <item-id> <rating>",
		Short: "Rate an item from 0 to 10",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}
			return ctx.withStore(func(store *catalog.Store) error {
				item, err := store.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return fmt.Errorf("item %s not found", args[0])
				}
				if err := store.SetRating(cmd.Context(), item.ID, rating); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: rating=%d\n", item.Title, rating)
				return nil
			})
		},
	}
}

func newItemRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from its collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				item, err := store.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if item == nil {
					return fmt.Errorf("item %s not found", args[0])
				}
				if err := store.DeleteItem(cmd.Context(), item.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.Title)
				return nil
			})
		},
	}
}
