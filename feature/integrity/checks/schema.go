package checks

import (
	"fmt"
	"sort"

	"cheevo-checker/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a database schema check.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// CheckSchema verifies the database schema using GORM models as the source of truth.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		actual, err := database.TableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}

		tr := TableReport{MissingColumns: []string{}, Status: "ok"}
		if len(actual) == 0 {
			tr.Status = "missing"
			report.Matched = false
			report.Tables[table] = tr
			continue
		}

		for _, col := range stmt.Schema.DBNames {
			if _, ok := actual[col]; !ok {
				tr.MissingColumns = append(tr.MissingColumns, col)
			}
		}
		if len(tr.MissingColumns) > 0 {
			sort.Strings(tr.MissingColumns)
			tr.Status = "error"
			report.Matched = false
		}
		report.Tables[table] = tr
	}

	return report, nil
}
