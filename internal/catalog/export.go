package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"title", "year", "media_type", "tmdb_id", "formats", "quantity", "watched", "rating"}

// ExportCSV writes a collection's items as CSV with a header row, one item
// per line, formats joined with commas inside a single field.
func ExportCSV(w io.Writer, items []*Item) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Title,
			item.Year,
			item.MediaType,
			strconv.FormatInt(item.TMDBID, 10),
			strings.Join(item.Formats, ","),
			strconv.Itoa(item.Quantity),
			strconv.FormatBool(item.Watched),
			strconv.Itoa(item.Rating),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
