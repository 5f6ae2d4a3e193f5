package launchbox

import "encoding/xml"

// Platform is one entry of Data/Platforms.xml.
type Platform struct {
	Name     string `xml:"Name" json:"name"`
	ScrapeAs string `xml:"ScrapeAs" json:"scrape_as,omitempty"`
	Category string `xml:"Category" json:"category,omitempty"`
}

type platformsFile struct {
	XMLName   xml.Name   `xml:"LaunchBox"`
	Platforms []Platform `xml:"Platform"`
}

type gameRecord struct {
	ID                    string `xml:"ID"`
	Title                 string `xml:"Title"`
	ApplicationPath       string `xml:"ApplicationPath"`
	Platform              string `xml:"Platform"`
	RetroAchievementsHash string `xml:"RetroAchievementsHash"`
}

type additionalRecord struct {
	ID              string `xml:"Id"`
	GameID          string `xml:"GameID"`
	Name            string `xml:"Name"`
	ApplicationPath string `xml:"ApplicationPath"`
}

type platformFile struct {
	XMLName    xml.Name           `xml:"LaunchBox"`
	Games      []gameRecord       `xml:"Game"`
	Additional []additionalRecord `xml:"AdditionalApplication"`
}
