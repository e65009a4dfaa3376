package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"contact-info-api/internal/config"
	"contact-info-api/internal/geocoder"
	"contact-info-api/internal/models"
	"contact-info-api/internal/repository"
	"contact-info-api/internal/service"

	"github.com/lib/pq"
)

type WidgetRow struct {
	InstanceID string
	Form       models.ContactInfoForm
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configDir := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	rows, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d widgets\n", len(rows))

	// Load config
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Geocode every address before touching the database
	geo := geocoder.NewClient(cfg.GeocodeEndpoint, cfg.GoogleMapsAPIKey, cfg.GeocodeTimeout)
	svc := service.NewContactInfoService(nil, geo, cfg.GoogleMapsAPIKey)

	records := make([]models.AddressRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := svc.Prepare(context.Background(), row.InstanceID, row.Form, nil)
		if err != nil {
			fmt.Printf("Error preparing widget %s: %v\n", row.InstanceID, err)
			os.Exit(1)
		}
		records = append(records, rec)
	}

	// Connect to DB
	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, err := db.Exec(repository.Schema); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	if err := insertRecords(db, records); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	if err := verifyImport(db, records); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d widgets\n", len(records))
}

// parseCSV reads instance_id,title,address,phone,hours,showmap rows after a header line.
func parseCSV(filePath string) ([]WidgetRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readRows(file)
}

func readRows(r io.Reader) ([]WidgetRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []WidgetRow
	seen := map[string]struct{}{}
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
		}
		if strings.TrimSpace(record[0]) == "" {
			return nil, fmt.Errorf("missing instance id in record %v", record)
		}

		id := strings.TrimSpace(record[0])
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("duplicate instance id: %s", id)
		}
		seen[id] = struct{}{}

		row := WidgetRow{
			InstanceID: id,
			Form: models.ContactInfoForm{
				Title:   record[1],
				Address: record[2],
				Phone:   record[3],
				Hours:   record[4],
			},
		}

		if len(record) > 5 && strings.TrimSpace(record[5]) != "" {
			n, err := strconv.Atoi(strings.TrimSpace(record[5]))
			if err != nil {
				return nil, fmt.Errorf("invalid showmap: %s", record[5])
			}
			showMap := n != 0
			row.Form.ShowMap = &showMap
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func insertRecords(db *sql.DB, records []models.AddressRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		CREATE TEMP TABLE contact_info_import
		(LIKE contact_info_widgets INCLUDING DEFAULTS) ON COMMIT DROP
	`); err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}

	// Use COPY for bulk insert
	stmt, err := tx.Prepare(pq.CopyIn("contact_info_import",
		"instance_id", "title", "address", "phone", "hours", "show_map", "lat", "lon"))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}

	for _, r := range records {
		if _, err := stmt.Exec(r.InstanceID, r.Title, r.Address, r.Phone, r.Hours, r.ShowMap, r.Lat, r.Lon); err != nil {
			stmt.Close()
			return fmt.Errorf("copy widget %s: %w", r.InstanceID, err)
		}
	}
	if _, err := stmt.Exec(); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO contact_info_widgets (instance_id, title, address, phone, hours, show_map, lat, lon, updated_at)
		SELECT instance_id, title, address, phone, hours, show_map, lat, lon, now()
		FROM contact_info_import
		ON CONFLICT (instance_id) DO UPDATE
		SET title = EXCLUDED.title,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			hours = EXCLUDED.hours,
			show_map = EXCLUDED.show_map,
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			updated_at = EXCLUDED.updated_at
	`); err != nil {
		return fmt.Errorf("merge staging table: %w", err)
	}

	return tx.Commit()
}

func verifyImport(db *sql.DB, records []models.AddressRecord) error {
	ids := make([]string, len(records))
	mapped := 0
	for i, r := range records {
		ids[i] = r.InstanceID
		if geocoder.HasUsableMap(r.Lat, r.Lon) {
			mapped++
		}
	}

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM contact_info_widgets WHERE instance_id = ANY($1)`, pq.Array(ids)).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != len(records) {
		return fmt.Errorf("record count mismatch: expected %d, got %d", len(records), count)
	}

	fmt.Printf("Widgets with a map: %d of %d\n", mapped, len(records))
	return nil
}
