package bgg

import "encoding/xml"

// Wire types for the catalog XML API. Numeric attributes stay strings here
// because the API uses markers like "Not Ranked" where a number would be;
// parsing happens in parser.go with per-field defaults.

type thingPayload struct {
	XMLName xml.Name    `xml:"items"`
	Items   []ThingItem `xml:"item"`
}

// ThingItem is a single catalog item from the detail endpoint.
type ThingItem struct {
	ID          string      `xml:"id,attr"`
	Thumbnail   string      `xml:"thumbnail"`
	Image       string      `xml:"image"`
	Names       []nameTag   `xml:"name"`
	MinPlayers  *attrValue  `xml:"minplayers"`
	MaxPlayers  *attrValue  `xml:"maxplayers"`
	PlayingTime *attrValue  `xml:"playingtime"`
	Polls       []pollTag   `xml:"poll"`
	Statistics  *statsBlock `xml:"statistics"`
}

type nameTag struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type attrValue struct {
	Value string `xml:"value,attr"`
}

type pollTag struct {
	Name    string        `xml:"name,attr"`
	Results []pollResults `xml:"results"`
}

type pollResults struct {
	NumPlayers string       `xml:"numplayers,attr"`
	Results    []pollResult `xml:"result"`
}

type pollResult struct {
	Value    string `xml:"value,attr"`
	NumVotes string `xml:"numvotes,attr"`
}

type statsBlock struct {
	Ratings *ratingsBlock `xml:"ratings"`
}

type ratingsBlock struct {
	Average *attrValue `xml:"average"`
	Ranks   []rankTag  `xml:"ranks>rank"`
}

type rankTag struct {
	Type  string `xml:"type,attr"`
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type searchPayload struct {
	XMLName xml.Name     `xml:"items"`
	Items   []searchItem `xml:"item"`
}

type searchItem struct {
	ID            string     `xml:"id,attr"`
	Name          *nameTag   `xml:"name"`
	YearPublished *attrValue `xml:"yearpublished"`
}
