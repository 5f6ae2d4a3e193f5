// Package launchbox reads the local game catalog of a LaunchBox installation.
//
// Data/Platforms.xml lists the platforms; each platform's games and additional
// applications live in Data/Platforms/<Name>.xml. A platform can be addressed
// by its Name or by its ScrapeAs value. Reader implements reconcile.LocalCatalog.
//
// Launch paths are kept exactly as written in the catalog, since they key the
// hash cache. NewPathResolver turns them into paths the hashing tools can open.
//
// # Usage
//
//	reader := launchbox.NewReader(cfg.Launchbox.Directory)
//	resolver := launchbox.NewPathResolver(cfg.Launchbox.Directory, cfg.Launchbox.PathRewrites)
//	local := reconcile.NewLocalBuilder(reader, hasher, store, resolver, log)
package launchbox
