// Package loader registers the features served by the start command.
//
// A feature contributes routes to the fiber router and may disable itself,
// for example the run history when no database is configured.
//
// # Usage
//
//	mgr := loader.NewManager()
//	mgr.Register(report.NewFeature(run, db, logger))
//	mgr.Register(integrity.NewFeature(deps, logger))
//	loaded, err := mgr.LoadAll(app)
package loader
