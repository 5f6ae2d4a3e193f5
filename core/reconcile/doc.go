// Package reconcile matches the local game-library catalog against the remote
// achievement catalog using content hashes as the join key.
//
// A run is split into independent index builders and a matching step:
//
// 1. RemoteBuilder: fetches the game list of each console, case-folds every hash
//    and flags hashes claimed by two different games (the first game keeps it).
//
// 2. LocalBuilder: walks primary and secondary entries of each platform, computing
//    missing secondary hashes through a Hasher and persisting them in a
//    per-platform HashCacheStore, and feeds every local hash into the run-scoped
//    global HashSet.
//
// 3. Reconcile: a remote game is found when any of its hashes is in the global set.
//    Unmatched titles are filtered by the ordered exclusion Rules and reported
//    together with their alternate hash candidates.
//
// All hashes pass through NormalizeHash at ingestion, so matching is case-insensitive
// everywhere.
//
// # Collaborators
//
// The engine only depends on the LocalCatalog, RemoteCatalog, Hasher and
// HashCacheStore interfaces. Concrete implementations live in feature/launchbox,
// feature/retroachievements, feature/rahasher and core/hashcache.
//
// # Usage Example
//
//	local := reconcile.NewLocalBuilder(catalog, hasher, cacheStore, resolver, logger)
//	engine := reconcile.NewEngine(raClient, local, reconcile.DefaultRules(cfg.Checker), logger)
//
//	report, err := engine.Run(ctx, partitions)
//	for _, p := range report.Partitions {
//	    for _, m := range p.Missing {
//	        fmt.Println("[NOT FOUND]", m.Game.Title)
//	    }
//	}
package reconcile
