package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ImportCSV parses items from a CSV export. Column names are matched
// case-insensitively and common aliases are accepted (title/name,
// media_type/type, tmdb_id/tmdbid), so exports from other catalog tools
// import without editing. Rows with no title are skipped.
func ImportCSV(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	field := func(record []string, names ...string) string {
		for _, name := range names {
			if idx, ok := columns[name]; ok && idx < len(record) {
				return strings.TrimSpace(record[idx])
			}
		}
		return ""
	}

	var items []Item
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		title := field(record, "title", "name")
		if title == "" {
			continue
		}
		mediaType := strings.ToLower(field(record, "media_type", "type"))
		if mediaType != "tv" {
			mediaType = "movie"
		}
		tmdbID, _ := strconv.ParseInt(field(record, "tmdb_id", "tmdbid", "id"), 10, 64)
		watched, _ := strconv.ParseBool(field(record, "watched"))
		rating, _ := strconv.Atoi(field(record, "rating"))
		if rating < 0 || rating > 10 {
			rating = 0
		}
		formats := splitFormats(field(record, "formats", "format"))
		if len(formats) == 0 {
			formats = []string{"DVD"}
		}
		quantity, _ := strconv.Atoi(field(record, "quantity", "copies"))
		if quantity < 1 {
			quantity = 1
		}

		items = append(items, Item{
			ID:        uuid.NewString(),
			TMDBID:    tmdbID,
			Title:     title,
			MediaType: mediaType,
			Year:      field(record, "year", "release_year"),
			Formats:   formats,
			Quantity:  quantity,
			Watched:   watched,
			Rating:    rating,
		})
	}
	return items, nil
}

// CollectionNameFromFile derives a presentable collection name from an
// import file name: "star wars discs.csv" becomes "Star Wars Discs".
func CollectionNameFromFile(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Imported Collection"
	}
	return cases.Title(language.English).String(base)
}
