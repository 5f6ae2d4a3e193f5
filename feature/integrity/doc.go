// Package integrity provides environment health checks for the checker.
//
// A run depends on a readable LaunchBox installation, the external hash
// tools, the hash cache backend and, optionally, the database. This package
// checks each of them without starting a run.
//
// # Checks Provided
//
//   - Library: Every configured LaunchBox platform is listed in Platforms.xml (by name, alias or ScrapeAs).
//   - Tools: RAHasher and DolphinTool exist at their configured paths.
//   - Storage: The hash cache bucket exists (only with the storage backend).
//   - Database: The run history and response cache tables match their GORM models.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/library : Runs the library check.
//   - GET /integrity/tools : Runs the tools check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/database : Runs the schema check.
package integrity
