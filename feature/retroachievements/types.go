package retroachievements

import (
	"strings"

	"cheevo-checker/core/reconcile"
	"cheevo-checker/core/utils"
)

// The API is loose about numeric types, so ids are decoded as any and
// converted with utils.

type consoleRecord struct {
	ID           any    `json:"ID"`
	Name         string `json:"Name"`
	Active       any    `json:"Active"`
	IsGameSystem any    `json:"IsGameSystem"`
}

type gameRecord struct {
	ID              any      `json:"ID"`
	Title           string   `json:"Title"`
	ConsoleID       any      `json:"ConsoleID"`
	ConsoleName     string   `json:"ConsoleName"`
	NumAchievements any      `json:"NumAchievements"`
	Hashes          []string `json:"Hashes"`
}

type hashRecord struct {
	MD5    string   `json:"MD5"`
	Name   any      `json:"Name"`
	Labels []string `json:"Labels"`
}

type hashesResponse struct {
	Results []hashRecord `json:"Results"`
}

func (r consoleRecord) toConsole() reconcile.Console {
	return reconcile.Console{ID: utils.ToInt(r.ID), Name: r.Name}
}

func (r gameRecord) toGame() reconcile.RemoteGame {
	hashes := r.Hashes
	if hashes == nil {
		hashes = []string{}
	}
	return reconcile.RemoteGame{
		ID:          utils.ToInt(r.ID),
		Title:       r.Title,
		ConsoleID:   utils.ToInt(r.ConsoleID),
		ConsoleName: r.ConsoleName,
		Hashes:      hashes,
	}
}

func (r hashRecord) toCandidate() reconcile.HashCandidate {
	name := "No Name"
	if r.Name != nil {
		if s := utils.ToString(r.Name); s != "" {
			name = s
		}
	}
	labels := r.Labels
	if labels == nil {
		labels = []string{}
	}
	return reconcile.HashCandidate{Hash: r.MD5, Name: name, Labels: labels}
}

// FormatLabels renders hash labels the way the site does, e.g. "[NOINTRO] [RAPATCHES]".
func FormatLabels(labels []string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, "["+strings.ToUpper(l)+"]")
	}
	return strings.Join(parts, " ")
}
