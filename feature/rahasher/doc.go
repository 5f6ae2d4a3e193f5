// Package rahasher computes RetroAchievements content hashes with external tools.
//
// Most consoles are hashed by RAHasher, invoked as
//
//	RAHasher <console_id> <path>
//
// Disc based consoles (GameCube by default) are hashed by DolphinTool:
//
//	DolphinTool verify -i <path> -a rchash
//
// The last line printed by the tool must be a 32 character hex digest; it is
// returned lower-cased. A missing tool yields ErrToolUnavailable without
// starting a process, and any other output yields ErrInvalidOutput. Neither
// case ever produces a value that could be cached.
//
// # Usage
//
//	computer := rahasher.New(cfg.Hashing, rahasher.WithLogger(log))
//	h, err := computer.Hash(ctx, 12, `X:\emulation\PS1\game.chd`)
package rahasher
