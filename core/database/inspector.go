package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// TableColumns returns the lower-cased column names of table mapped to their
// lower-cased SQL types. A table that does not exist yields an empty map.
func TableColumns(db *gorm.DB, table string) (map[string]string, error) {
	type column struct {
		Name string
		Type string
	}

	var cols []column
	var err error
	switch db.Dialector.Name() {
	case DriverSQLite:
		err = db.Raw("SELECT name, type FROM pragma_table_info(?)", table).Scan(&cols).Error
	default:
		err = db.Raw(
			"SELECT column_name AS name, column_type AS type FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?",
			table,
		).Scan(&cols).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}

	out := make(map[string]string, len(cols))
	for _, c := range cols {
		out[strings.ToLower(c.Name)] = strings.ToLower(c.Type)
	}
	return out, nil
}
