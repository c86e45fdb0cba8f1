// Package festival holds the static seasonal-demand catalog and the logic
// for finding the nearest upcoming event. The catalog is loaded once at
// startup and never mutated, so it is safe for concurrent reads.
package festival

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Record is one catalog entry. Immutable after load.
type Record struct {
	Name            string   `json:"name"`
	Region          string   `json:"region"`
	Month           string   `json:"month"`
	Type            string   `json:"type"`
	IsPublicHoliday bool     `json:"is_public_holiday"`
	TopSellingItems []string `json:"top_selling_items"`
	DemandLevel     string   `json:"demand_level"`
	DemandScore     int      `json:"demand_score"`
}

// Column positions in the dataset, matching the header
// festival_name,region,month,date_2026,type,public_holiday,top_selling_items,demand_level,estimated_demand_score
const (
	colName = iota
	colRegion
	colMonth
	colDate
	colType
	colPublicHoliday
	colTopSellingItems
	colDemandLevel
	colDemandScore
)

// Load reads the festival dataset from path. A missing or unparseable file
// degrades to an empty catalog so the rest of the system keeps running with
// "no forecast available" instead of crashing.
func Load(path string) []Record {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("[FESTIVAL] Could not open dataset %s: %v", path, err)
		return nil
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		log.Printf("[FESTIVAL] Could not parse dataset %s: %v", path, err)
		return nil
	}

	log.Printf("[FESTIVAL] Loaded %d festival records from %s", len(records), path)
	return records
}

// Parse reads catalog records from r. Commas inside quoted fields do not
// split the record; rows shorter than the header are tolerated, with the
// missing trailing fields treated as empty. Duplicate (name, month) pairs
// keep the first occurrence.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var records []Record
	seen := make(map[string]bool)

	for i, row := range rows {
		if i == 0 && strings.EqualFold(field(row, colName), "festival_name") {
			continue // header
		}

		name := field(row, colName)
		month := field(row, colMonth)
		if name == "" || month == "" {
			continue
		}

		key := strings.ToLower(name) + "|" + strings.ToLower(month)
		if seen[key] {
			continue
		}
		seen[key] = true

		score, _ := strconv.Atoi(field(row, colDemandScore))

		records = append(records, Record{
			Name:            name,
			Region:          field(row, colRegion),
			Month:           month,
			Type:            field(row, colType),
			IsPublicHoliday: parseBool(field(row, colPublicHoliday)),
			TopSellingItems: splitItems(field(row, colTopSellingItems)),
			DemandLevel:     field(row, colDemandLevel),
			DemandScore:     score,
		})
	}

	return records, nil
}

// field returns the trimmed column value, or "" when the row is too short.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "yes") || strings.EqualFold(s, "true")
}

// splitItems splits the already-unquoted top_selling_items field on commas
// and trims each entry.
func splitItems(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
