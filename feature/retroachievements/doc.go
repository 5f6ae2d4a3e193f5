// Package retroachievements is a client for the RetroAchievements web API.
//
// Every request carries the username and API key as the z and y query
// parameters (QueryAuth). Requests are spaced to honour a soft rate limit and
// retried a bounded number of times with a fixed pause when the transport
// fails or the status is not 200.
//
// The console list and per-console game lists change rarely and are large, so
// their raw bodies can be kept in a ResponseCache. DBCache stores them in the
// api_response_cache table with a TTL. Hash lookups for single games are
// always fetched live.
//
// # Endpoints
//
//   - API_GetConsoleIDs.php: ConsoleIDs
//   - API_GetGameList.php: GameList (i, f, h, o, c)
//   - API_GetGameHashes.php: GameHashes (i)
//
// # Usage
//
//	cache := retroachievements.NewDBCache(db, cfg.RetroAchievements.CacheTTL)
//	client := retroachievements.NewClient(cfg.RetroAchievements,
//	    retroachievements.WithCache(cache),
//	    retroachievements.WithLogger(log),
//	)
//	games, err := client.GameList(ctx, 16, true, true)
package retroachievements
