package checks

import (
	"fmt"
	"os"
	"strings"

	"cheevo-checker/feature/launchbox"
	"cheevo-checker/feature/rahasher"
)

// PlatformLister lists the platforms of a LaunchBox installation.
type PlatformLister interface {
	Platforms() ([]launchbox.Platform, error)
}

// ExpectedPlatform is a configured console's LaunchBox name and alias.
type ExpectedPlatform struct {
	Console string `json:"console"`
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
}

// LibraryReport lists configured platforms absent from Platforms.xml.
type LibraryReport struct {
	Platforms int                `json:"platforms"`
	Missing   []ExpectedPlatform `json:"missing"`
}

// CheckLibrary verifies that every expected platform resolves by name, by
// alias, or through a ScrapeAs entry.
func CheckLibrary(lister PlatformLister, expected []ExpectedPlatform) (*LibraryReport, error) {
	platforms, err := lister.Platforms()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(platforms)*2)
	for _, p := range platforms {
		known[p.Name] = true
		if p.ScrapeAs != "" {
			known[p.ScrapeAs] = true
		}
	}

	report := &LibraryReport{Platforms: len(platforms), Missing: []ExpectedPlatform{}}
	for _, e := range expected {
		if known[e.Name] || (e.Alias != "" && known[e.Alias]) {
			continue
		}
		report.Missing = append(report.Missing, e)
	}
	return report, nil
}

// ToolReport describes one external hash tool.
type ToolReport struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Status string `json:"status"` // "ok", "missing", "not_configured"
	Error  string `json:"error,omitempty"`
}

// CheckTools reports whether the configured hash tools exist on disk.
func CheckTools(cfg rahasher.Config) []ToolReport {
	return []ToolReport{
		checkTool("RAHasher", cfg.RAHasherPath),
		checkTool("DolphinTool", cfg.DolphinToolPath),
	}
}

func checkTool(name, path string) ToolReport {
	r := ToolReport{Name: name, Path: path, Status: "ok"}
	if strings.TrimSpace(path) == "" {
		r.Status = "not_configured"
		return r
	}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		r.Status = "missing"
		r.Error = err.Error()
	case info.IsDir():
		r.Status = "missing"
		r.Error = fmt.Sprintf("%s is a directory", path)
	}
	return r
}
