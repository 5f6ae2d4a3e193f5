package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partitionWith builds a partition whose remote index already holds games.
func partitionWith(games ...RemoteGame) *Partition {
	p := &Partition{RemoteID: 7, RemoteName: "PlayStation", LocalName: "Sony Playstation", Active: true}
	p.Remote, _ = IndexRemoteGames(p, games)
	return p
}

func TestReconcile_CaseInsensitiveMatch(t *testing.T) {
	global := NewHashSet()
	global.Add(hashA)

	p := partitionWith(RemoteGame{ID: 1, Title: "Foo", Hashes: []string{NormalizeHash(hashA)}})
	report, err := Reconcile(context.Background(), global, p, DefaultRules(allEnabled()), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Found)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Skipped)
}

func TestReconcile_ExclusionRules(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ExclusionConfig
		wantMissing int
		wantSkipped int
	}{
		{"Demo skipped", ExclusionConfig{SkipDemo: true}, 0, 1},
		{"Demo reported", ExclusionConfig{}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := new(mockRemote)
			lookup.On("GameHashes", mock.Anything, 1).Return([]HashCandidate{
				{Hash: hashC, Name: "Foo (Demo).iso", Labels: []string{"nointro"}},
			}, nil).Maybe()

			p := partitionWith(RemoteGame{ID: 1, Title: "Foo ~Demo~", Hashes: []string{hashB}})
			report, err := Reconcile(context.Background(), NewHashSet(), p, DefaultRules(tt.cfg), lookup)

			require.NoError(t, err)
			assert.Len(t, report.Missing, tt.wantMissing)
			assert.Len(t, report.Skipped, tt.wantSkipped)
			if tt.wantSkipped > 0 {
				assert.Equal(t, "demo", report.Skipped[0].Rule)
				lookup.AssertNotCalled(t, "GameHashes", mock.Anything, mock.Anything)
			}
			if tt.wantMissing > 0 {
				assert.Equal(t, "Foo ~Demo~", report.Missing[0].Game.Title)
				require.Len(t, report.Missing[0].Candidates, 1)
				assert.Equal(t, hashC, report.Missing[0].Candidates[0].Hash)
			}
		})
	}
}

func TestReconcile_ReportOrderAndUnhashed(t *testing.T) {
	global := NewHashSet()
	global.Add(hashB)

	p := partitionWith(
		RemoteGame{ID: 3, Title: "Zeta", Hashes: []string{hashC}},
		RemoteGame{ID: 1, Title: "Alpha", Hashes: []string{hashD}},
		RemoteGame{ID: 2, Title: "Beta", Hashes: []string{hashA, hashB}},
		RemoteGame{ID: 4, Title: "No hashes"},
	)
	report, err := Reconcile(context.Background(), global, p, nil, nil)

	require.NoError(t, err)
	require.Len(t, report.Missing, 2)
	assert.Equal(t, "Zeta", report.Missing[0].Game.Title)
	assert.Equal(t, "Alpha", report.Missing[1].Game.Title)
	assert.NotNil(t, report.Missing[0].Candidates)
	assert.Equal(t, 1, report.Found, "any matching hash marks the game found")
	assert.Equal(t, 1, report.Unhashed)
	assert.Equal(t, 4, report.RemoteGames)
}

func TestReconcile_LookupError(t *testing.T) {
	lookup := new(mockRemote)
	lookup.On("GameHashes", mock.Anything, 9).Return(nil, errors.New("timeout"))

	p := partitionWith(RemoteGame{ID: 9, Title: "Foo", Hashes: []string{hashB}})
	report, err := Reconcile(context.Background(), NewHashSet(), p, nil, lookup)

	require.NoError(t, err)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "timeout", report.Missing[0].LookupError)
	assert.Empty(t, report.Missing[0].Candidates)
}

func TestReconcile_Idempotent(t *testing.T) {
	global := NewHashSet()
	global.Add(hashA)
	p := partitionWith(
		RemoteGame{ID: 1, Title: "Foo", Hashes: []string{hashA}},
		RemoteGame{ID: 2, Title: "Bar ~Hack~", Hashes: []string{hashB}},
		RemoteGame{ID: 3, Title: "Baz", Hashes: []string{hashC}},
	)
	rules := DefaultRules(allEnabled())

	first, err := Reconcile(context.Background(), global, p, rules, nil)
	require.NoError(t, err)
	second, err := Reconcile(context.Background(), global, p, rules, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcile_IndexNotBuilt(t *testing.T) {
	p := &Partition{RemoteID: 7, RemoteName: "PlayStation", Active: true}
	_, err := Reconcile(context.Background(), NewHashSet(), p, nil, nil)
	assert.ErrorIs(t, err, ErrIndexNotBuilt)
}

func TestEngine_Run(t *testing.T) {
	remote := new(mockRemote)
	remote.On("ConsoleIDs", mock.Anything).Return([]Console{
		{ID: 12, Name: "PlayStation"},
		{ID: 16, Name: "GameCube"},
	}, nil).Once()
	remote.On("GameList", mock.Anything, 16, true, true).Return([]RemoteGame{
		{ID: 100, Title: "Alpha", Hashes: []string{NormalizeHash(hashA)}},
		{ID: 101, Title: "Beta", Hashes: []string{hashB}},
		{ID: 102, Title: "Gamma ~Prototype~", Hashes: []string{hashD}},
		{ID: 103, Title: "Delta", Hashes: []string{hashC}},
		{ID: 104, Title: "Delta (Rev A)", Hashes: []string{hashC}},
	}, nil)
	remote.On("GameList", mock.Anything, 12, true, true).Return([]RemoteGame{
		{ID: 200, Title: "Shared", Hashes: []string{hashC}},
	}, nil)

	catalog := &fakeCatalog{platforms: map[string]*PlatformCatalog{
		"Nintendo GameCube": gcPlatform(),
		"Sony Playstation": {Name: "Sony Playstation", Games: []CatalogEntry{
			{ID: "p1", Title: "Shared", Hash: hashC},
		}},
	}}
	hasher := new(mockHasher)
	hasher.On("Hash", mock.Anything, 16, `D:\Games\beta-disc2.iso`).Return(hashB, nil).Once()
	cache := newMemCache()

	local := NewLocalBuilder(catalog, hasher, cache, nil, nil)
	engine := NewEngine(remote, local, DefaultRules(allEnabled()), nil)

	partitions := []*Partition{
		{RemoteName: "GameCube", LocalName: "Nintendo GameCube", Active: true},
		{RemoteName: "playstation", LocalName: "Sony Playstation", Active: true},
		{RemoteName: "Dreamcast", LocalName: "Sega Dreamcast", Active: false},
	}
	report, err := engine.Run(context.Background(), partitions)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Partitions, 3)

	gc := report.Partitions[0]
	assert.True(t, gc.Active)
	assert.Equal(t, 16, gc.ConsoleID)
	assert.Equal(t, 4, gc.Found, "primary, secondary and cross-partition hashes all match")
	require.Len(t, gc.Skipped, 1)
	assert.Equal(t, "prototype", gc.Skipped[0].Rule)

	// Delta is matched through the PlayStation partition's local hash.
	assert.Empty(t, gc.Missing)
	assert.Equal(t, 1, gc.Local.NewHashes)

	ps := report.Partitions[1]
	assert.Equal(t, 12, ps.ConsoleID, "console names resolve case-insensitively")
	assert.Equal(t, 1, ps.Found)

	assert.False(t, report.Partitions[2].Active)

	require.Len(t, report.Anomalies, 1)
	assert.Equal(t, 103, report.Anomalies[0].FirstGameID)
	assert.Equal(t, 104, report.Anomalies[0].GameID)

	assert.Equal(t, Summary{
		Partitions:  3,
		Inactive:    1,
		RemoteGames: 6,
		LocalHashes: 3,
		NewHashes:   1,
		Found:       5,
		Skipped:     1,
		Anomalies:   1,
	}, report.Summary)

	remote.AssertNotCalled(t, "GameHashes", mock.Anything, mock.Anything)
	hasher.AssertExpectations(t)
}

func TestEngine_RunReportsMissing(t *testing.T) {
	remote := new(mockRemote)
	remote.On("GameList", mock.Anything, 16, true, true).Return([]RemoteGame{
		{ID: 1, Title: "Alpha", Hashes: []string{hashA}},
		{ID: 2, Title: "Unknown", Hashes: []string{hashD}},
	}, nil)
	remote.On("GameHashes", mock.Anything, 2).Return([]HashCandidate{
		{Hash: hashD, Name: "Unknown (USA).iso", Labels: []string{"redump"}},
	}, nil)

	catalog := &fakeCatalog{platforms: map[string]*PlatformCatalog{
		"Nintendo GameCube": {Name: "Nintendo GameCube", Games: []CatalogEntry{{ID: "g1", Hash: hashA}}},
	}}
	local := NewLocalBuilder(catalog, new(mockHasher), newMemCache(), nil, nil)
	engine := NewEngine(remote, local, DefaultRules(allEnabled()), nil)

	report, err := engine.Run(context.Background(), []*Partition{newPartition()})
	require.NoError(t, err)

	require.Len(t, report.Partitions[0].Missing, 1)
	m := report.Partitions[0].Missing[0]
	assert.Equal(t, 2, m.Game.ID)
	assert.Equal(t, []HashCandidate{{Hash: hashD, Name: "Unknown (USA).iso", Labels: []string{"redump"}}}, m.Candidates)
	assert.Equal(t, 1, report.Summary.Missing)

	remote.AssertNotCalled(t, "ConsoleIDs", mock.Anything)
}

func TestEngine_RunConsoleIDsFailure(t *testing.T) {
	remote := new(mockRemote)
	remote.On("ConsoleIDs", mock.Anything).Return(nil, errors.New("unauthorized"))

	engine := NewEngine(remote, NewLocalBuilder(&fakeCatalog{}, new(mockHasher), newMemCache(), nil, nil), nil, nil)
	report, err := engine.Run(context.Background(), []*Partition{{RemoteName: "GameCube", LocalName: "x", Active: true}})

	assert.Nil(t, report)
	assert.ErrorContains(t, err, "unauthorized")
}

func TestEngine_RunDropsFailedPartitions(t *testing.T) {
	remote := new(mockRemote)
	remote.On("ConsoleIDs", mock.Anything).Return([]Console{{ID: 16, Name: "GameCube"}}, nil)
	remote.On("GameList", mock.Anything, 16, true, true).Return(nil, errors.New("status 500"))
	remote.On("GameList", mock.Anything, 12, true, true).Return([]RemoteGame{{ID: 1, Title: "A", Hashes: []string{hashA}}}, nil)

	local := NewLocalBuilder(&fakeCatalog{}, new(mockHasher), newMemCache(), nil, nil)
	engine := NewEngine(remote, local, nil, nil)

	partitions := []*Partition{
		{RemoteName: "GameCube", LocalName: "Nintendo GameCube", Active: true},
		{RemoteName: "Virtual Boy", LocalName: "Nintendo Virtual Boy", Active: true},
		{RemoteID: 12, RemoteName: "PlayStation", LocalName: "Sony Playstation", Active: true},
	}
	report, err := engine.Run(context.Background(), partitions)
	require.NoError(t, err)

	for i, pr := range report.Partitions {
		assert.False(t, pr.Active, "partition %d", i)
		assert.NotEmpty(t, pr.Error, "partition %d", i)
		assert.False(t, partitions[i].Active)
	}
	assert.Contains(t, report.Partitions[0].Error, "status 500")
	assert.Contains(t, report.Partitions[1].Error, "Virtual Boy")
	assert.Contains(t, report.Partitions[2].Error, ErrPlatformNotFound.Error())
	assert.Equal(t, 3, report.Summary.Inactive)
}
