package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndexRemoteGames(t *testing.T) {
	p := &Partition{RemoteID: 16, RemoteName: "GameCube"}
	games := []RemoteGame{
		{ID: 1, Title: "Alpha", Hashes: []string{hashA, NormalizeHash(hashA), " "}},
		{ID: 2, Title: "Beta", Hashes: []string{hashB}},
		{ID: 3, Title: "Alpha (Rev 1)", Hashes: []string{NormalizeHash(hashA), hashC}},
		{ID: 4, Title: "Unhashed"},
	}

	index, anomalies := IndexRemoteGames(p, games)

	require.Len(t, index.Games, 4)
	assert.Equal(t, []string{NormalizeHash(hashA)}, index.Games[0].Hashes)
	assert.Equal(t, 16, index.Games[0].ConsoleID)
	assert.Equal(t, "GameCube", index.Games[0].ConsoleName)
	assert.Empty(t, index.Games[3].Hashes)

	assert.Equal(t, 0, index.ByHash[NormalizeHash(hashA)], "first game keeps the hash")
	assert.Equal(t, 1, index.ByHash[hashB])
	assert.Equal(t, 2, index.ByHash[hashC])

	require.Len(t, anomalies, 1)
	assert.Equal(t, Anomaly{
		ConsoleID:   16,
		ConsoleName: "GameCube",
		Hash:        NormalizeHash(hashA),
		FirstGameID: 1,
		FirstTitle:  "Alpha",
		GameID:      3,
		Title:       "Alpha (Rev 1)",
	}, anomalies[0])
}

func TestRemoteBuilder_Build(t *testing.T) {
	remote := new(mockRemote)
	remote.On("GameList", mock.Anything, 16, true, true).Return([]RemoteGame{
		{ID: 1, Title: "Alpha", Hashes: []string{hashA}},
	}, nil)

	p := &Partition{RemoteID: 16, RemoteName: "GameCube", Active: true}
	anomalies, err := NewRemoteBuilder(remote, nil).Build(context.Background(), p)

	require.NoError(t, err)
	assert.Empty(t, anomalies)
	require.NotNil(t, p.Remote)
	assert.Contains(t, p.Remote.ByHash, NormalizeHash(hashA))
	remote.AssertExpectations(t)
}

func TestRemoteBuilder_BuildError(t *testing.T) {
	remote := new(mockRemote)
	remote.On("GameList", mock.Anything, 16, true, true).Return(nil, errors.New("status 503"))

	p := &Partition{RemoteID: 16, RemoteName: "GameCube", Active: true}
	_, err := NewRemoteBuilder(remote, nil).Build(context.Background(), p)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Nil(t, p.Remote)
}
