// Package report keeps the history of reconciliation runs.
//
// Each run is stored with its summary counters, one row per console, the
// unmatched remote games (skipped ones flagged with the rule that filtered
// them, candidate hashes serialized as JSON) and the duplicate remote hash
// anomalies.
//
// # HTTP Endpoints
//
//   - GET /runs : Lists recent runs (supports ?limit=N).
//   - POST /runs : Runs a reconciliation now. Concurrent requests share one run.
//   - GET /runs/:id : Returns one run (supports ?skipped=true).
//
// # Usage
//
//	repo := report.NewRepository(db)
//	if err := repo.Migrate(); err != nil {
//	    return err
//	}
//	err := repo.Save(ctx, report.FromReport(result))
package report
