// Package database opens the optional SQL database behind the run history
// and the API response cache.
//
// Connect builds a GORM connection for either MySQL or SQLite, selected by
// Config.Driver. SQLite is the default and keeps everything in a single file
// next to the hash caches; its directory is created on demand.
//
// TableColumns lists the columns of a table for the database integrity check.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.TableColumns(db, "runs")
package database
