package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RemoteBuilder fetches and indexes the remote game list of a partition.
type RemoteBuilder struct {
	catalog RemoteCatalog
	logger  *zap.Logger
}

// NewRemoteBuilder creates a RemoteBuilder.
func NewRemoteBuilder(catalog RemoteCatalog, logger *zap.Logger) *RemoteBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteBuilder{catalog: catalog, logger: logger}
}

// Build fetches the games with achievements of p.RemoteID, including their
// hashes, and stores the index in p.Remote. Hashes claimed by two different
// games are returned as anomalies; the first game keeps the hash.
func (b *RemoteBuilder) Build(ctx context.Context, p *Partition) ([]Anomaly, error) {
	games, err := b.catalog.GameList(ctx, p.RemoteID, true, true)
	if err != nil {
		return nil, fmt.Errorf("fetch game list for %s: %w", p.Label(), err)
	}

	index, anomalies := IndexRemoteGames(p, games)
	for _, a := range anomalies {
		b.logger.Warn("Hash already exists in remote lookup",
			zap.String("console", a.ConsoleName),
			zap.String("hash", a.Hash),
			zap.Int("first_game_id", a.FirstGameID),
			zap.String("first_title", a.FirstTitle),
			zap.Int("game_id", a.GameID),
			zap.String("title", a.Title),
		)
	}

	p.Remote = index

	b.logger.Info("Requested game data",
		zap.String("console", p.RemoteName),
		zap.Int("games", len(index.Games)),
		zap.Int("hashes", len(index.ByHash)),
	)

	return anomalies, nil
}

// IndexRemoteGames normalizes the hashes of games and builds a RemoteIndex.
func IndexRemoteGames(p *Partition, games []RemoteGame) (*RemoteIndex, []Anomaly) {
	index := &RemoteIndex{
		Games:  make([]RemoteGame, 0, len(games)),
		ByHash: make(map[string]int),
	}
	var anomalies []Anomaly

	for _, g := range games {
		if g.ConsoleID == 0 {
			g.ConsoleID = p.RemoteID
		}
		if g.ConsoleName == "" {
			g.ConsoleName = p.RemoteName
		}

		seen := make(map[string]struct{}, len(g.Hashes))
		hashes := make([]string, 0, len(g.Hashes))
		for _, h := range g.Hashes {
			h = NormalizeHash(h)
			if h == "" {
				continue
			}
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			hashes = append(hashes, h)
		}
		g.Hashes = hashes

		pos := len(index.Games)
		index.Games = append(index.Games, g)

		for _, h := range hashes {
			if first, exists := index.ByHash[h]; exists {
				owner := index.Games[first]
				anomalies = append(anomalies, Anomaly{
					ConsoleID:   p.RemoteID,
					ConsoleName: p.RemoteName,
					Hash:        h,
					FirstGameID: owner.ID,
					FirstTitle:  owner.Title,
					GameID:      g.ID,
					Title:       g.Title,
				})
				continue
			}
			index.ByHash[h] = pos
		}
	}

	return index, anomalies
}
