package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dress-diary/models"
)

var (
	// ErrNotFound is returned when a row does not exist or belongs to another user
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when signing up with a taken username
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned when a password does not match
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// columns holding JSON text that is unmarshalled into the record
var jsonColumns = map[string]bool{
	"materials": true,
}

// scanRecords reads every row into a Record keyed by column name.
// NULL columns are left out, so optional fields stay absent.
func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	records := []models.Record{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := models.Record{}
		for i, column := range columns {
			v := values[i]
			if v == nil {
				continue
			}
			if jsonColumns[column] {
				decoded, err := decodeJSONColumn(v)
				if err != nil {
					return nil, fmt.Errorf("failed to decode column %s: %w", column, err)
				}
				v = decoded
			}
			rec[column] = v
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return records, nil
}

func decodeJSONColumn(v interface{}) (interface{}, error) {
	var raw []byte
	switch t := v.(type) {
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return v, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
