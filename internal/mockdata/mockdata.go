// Package mockdata holds the static sample content served when mock mode is
// on or the backing store fails on a read. Its records keep the field names
// of the original sample fixtures, which differ from the store's column
// names; adapters.go is the one place where that mapping happens.
package mockdata

import (
	"time"
)

type MockArticle struct {
	ID        int
	Headline  string
	UrlSlug   string
	Body      string
	Summary   string
	ImageLink string
	TopicID   int
	Topic     string
	Writer    string
	Promoted  bool
	Hits      int
	PostedAt  time.Time
}

type MockCategory struct {
	ID      int
	Label   string
	UrlSlug string
	About   string
	Stories int
}

type MockSession struct {
	Token string
	Name  string
	Role  string
}

var baseTime = time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

var Categories = []MockCategory{
	{ID: 1, Label: "Big Wave", UrlSlug: "big-wave", About: "Heavy water reports", Stories: 3},
	{ID: 2, Label: "Forecasts", UrlSlug: "forecasts", About: "Swell and wind outlooks", Stories: 2},
	{ID: 3, Label: "Gear", UrlSlug: "gear", About: "Boards, wetsuits, accessories", Stories: 1},
	{ID: 4, Label: "Travel", UrlSlug: "travel", About: "Trips and destinations", Stories: 0},
}

var Articles = []MockArticle{
	{
		ID: 1, Headline: "Mavericks Wakes Up For First XXL Swell",
		UrlSlug: "mavericks-wakes-up-first-xxl-swell",
		Body:    "<p>The first proper XXL swell of the season lit up the bowl on Thursday morning.</p>",
		Summary: "The first proper XXL swell of the season lit up the bowl.",
		ImageLink: "/images/mavericks-xxl.jpg",
		TopicID:   1, Topic: "Big Wave", Writer: "Kai Moana", Promoted: true,
		Hits: 412, PostedAt: baseTime.Add(72 * time.Hour),
	},
	{
		ID: 2, Headline: "South Swell Window Opens Midweek",
		UrlSlug: "south-swell-window-opens-midweek",
		Body:    "<p>A long-period south swell arrives Wednesday with light morning winds.</p>",
		Summary: "Long-period south swell arrives Wednesday.",
		ImageLink: "/images/south-swell.jpg",
		TopicID:   2, Topic: "Forecasts", Writer: "Lena Reef",
		Hits: 188, PostedAt: baseTime.Add(48 * time.Hour),
	},
	{
		ID: 3, Headline: "Jaws Paddle Session Goes All Time",
		UrlSlug: "jaws-paddle-session-goes-all-time",
		Body:    "<p>Pe'ahi turned on for a small crew of paddlers over the weekend.</p>",
		Summary: "Pe'ahi turned on for a small crew of paddlers.",
		ImageLink: "/images/jaws-paddle.jpg",
		TopicID:   1, Topic: "Big Wave", Writer: "Kai Moana", Promoted: true,
		Hits: 530, PostedAt: baseTime.Add(24 * time.Hour),
	},
	{
		ID: 4, Headline: "Five Winter Wetsuits Worth The Money",
		UrlSlug: "five-winter-wetsuits-worth-the-money",
		Body:    "<p>We tested five 4/3 suits through a cold, windy month.</p>",
		Summary: "Five 4/3 suits tested through a cold month.",
		ImageLink: "/images/wetsuit-roundup.jpg",
		TopicID:   3, Topic: "Gear", Writer: "Lena Reef",
		Hits: 97, PostedAt: baseTime.Add(12 * time.Hour),
	},
	{
		ID: 5, Headline: "Reading Wind Charts Like A Forecaster",
		UrlSlug: "reading-wind-charts-like-a-forecaster",
		Body:    "<p>Gradient wind, sea breeze and why the nearshore model misses both.</p>",
		Summary: "Gradient wind, sea breeze and nearshore models.",
		ImageLink: "/images/wind-charts.jpg",
		TopicID:   2, Topic: "Forecasts", Writer: "Lena Reef",
		Hits: 61, PostedAt: baseTime,
	},
}

// Sessions back the auth gate when the store is absent.
var Sessions = []MockSession{
	{Token: "mock-admin-token", Name: "Kai Moana", Role: "admin"},
	{Token: "mock-editor-token", Name: "Lena Reef", Role: "editor"},
}

// SessionByToken resolves a mock session token; nil when unknown.
func SessionByToken(token string) *MockSession {
	for i := range Sessions {
		if Sessions[i].Token == token {
			return &Sessions[i]
		}
	}
	return nil
}
