package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"filmvault/internal/catalog"
)

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage disc collections",
	}

	collectionCmd.AddCommand(newCollectionListCommand(ctx))
	collectionCmd.AddCommand(newCollectionCreateCommand(ctx))
	collectionCmd.AddCommand(newCollectionDeleteCommand(ctx))
	collectionCmd.AddCommand(newCollectionShowCommand(ctx))
	collectionCmd.AddCommand(newCollectionExportCommand(ctx))
	collectionCmd.AddCommand(newCollectionImportCommand(ctx))

	return collectionCmd
}

func newCollectionListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				collections, err := store.ListCollections(cmd.Context())
				if err != nil {
					return err
				}
				if len(collections) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No collections yet. Create one with 'filmvault collection create <name>'.")
					return nil
				}
				rows := make([][]string, 0, len(collections))
				for _, collection := range collections {
					items, err := store.ListItems(cmd.Context(), collection.ID)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						collection.Name,
						strconv.Itoa(len(items)),
						collection.CreatedAt.Local().Format("2006-01-02"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Items", "Created"}, rows, 2))
				return nil
			})
		},
	}
}

func newCollectionCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name...>",
		Short: "Create a collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				name := strings.Join(args, " ")
				collection, err := store.CreateCollection(cmd.Context(), name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created collection %q\n", collection.Name)
				return nil
			})
		},
	}
}

func newCollectionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name...>",
		Short: "Delete a collection and its items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				collection, err := requireCollection(store, cmd, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if err := store.DeleteCollection(cmd.Context(), collection.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted collection %q\n", collection.Name)
				return nil
			})
		},
	}
}

func newCollectionShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name...>",
		Short: "Show a collection's items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				collection, err := requireCollection(store, cmd, strings.Join(args, " "))
				if err != nil {
					return err
				}
				items, err := store.ListItems(cmd.Context(), collection.ID)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Collection %q is empty.\n", collection.Name)
					return nil
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rating := "-"
					if item.Rating > 0 {
						rating = strconv.Itoa(item.Rating)
					}
					rows = append(rows, []string{
						item.Title,
						item.MediaType,
						orDash(item.Year),
						strings.Join(item.Formats, ", "),
						strconv.Itoa(item.Quantity),
						yesNo(item.Watched),
						rating,
						item.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(),
					renderTable([]string{"Title", "Type", "Year", "Formats", "Qty", "Watched", "Rating", "ID"}, rows, 5, 7))
				return nil
			})
		},
	}
}

func newCollectionExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <name...>",
		Short: "Export a collection to CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				collection, err := requireCollection(store, cmd, strings.Join(args, " "))
				if err != nil {
					return err
				}
				items, err := store.ListItems(cmd.Context(), collection.ID)
				if err != nil {
					return err
				}

				var out io.Writer = cmd.OutOrStdout()
				if outPath != "" {
					file, err := os.Create(outPath)
					if err != nil {
						return fmt.Errorf("create export file: %w", err)
					}
					defer file.Close()
					out = file
				}
				if err := catalog.ExportCSV(out, items); err != nil {
					return err
				}
				if outPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", len(items), outPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write CSV to a file instead of stdout")
	return cmd
}

func newCollectionImportCommand(ctx *commandContext) *cobra.Command {
	var collectionName string

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import items from a CSV file into a new or existing collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			items, err := catalog.ImportCSV(file)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no importable rows in %s", args[0])
			}

			name := collectionName
			if name == "" {
				name = catalog.CollectionNameFromFile(args[0])
			}

			return ctx.withStore(func(store *catalog.Store) error {
				collection, err := store.FindCollectionByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if collection == nil {
					if collection, err = store.CreateCollection(cmd.Context(), name); err != nil {
						return err
					}
				}
				for _, item := range items {
					item.CollectionID = collection.ID
					if _, err := store.AddItem(cmd.Context(), item); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items into %q\n", len(items), collection.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&collectionName, "name", "", "Collection name (defaults to the file name)")
	return cmd
}
