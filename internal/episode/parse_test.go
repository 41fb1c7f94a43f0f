package episode

import (
	"reflect"
	"testing"
)

func TestParseStandardMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Info
	}{
		{
			name: "sxxexx with episode title and tags",
			in:   "Breaking.Bad.S01E01.Pilot.720p.mkv",
			want: Info{Season: 1, Episode: 1, Episodes: []int{1}, ShowTitle: "Breaking Bad", EpisodeTitle: "Pilot"},
		},
		{
			name: "lowercase marker",
			in:   "the.office.s02e05.720p.mkv",
			want: Info{Season: 2, Episode: 5, Episodes: []int{5}, ShowTitle: "the office"},
		},
		{
			name: "double episode",
			in:   "Show.Name.S01E01E02.mkv",
			want: Info{Season: 1, Episode: 1, Episodes: []int{1, 2}, ShowTitle: "Show Name", IsMultiEpisode: true},
		},
		{
			name: "triple episode",
			in:   "Show.Name.S01E01E02E03.mkv",
			want: Info{Season: 1, Episode: 1, Episodes: []int{1, 2, 3}, ShowTitle: "Show Name", IsMultiEpisode: true},
		},
		{
			name: "nxm form",
			in:   "Show Name 3x07 Some Episode.mkv",
			want: Info{Season: 3, Episode: 7, Episodes: []int{7}, ShowTitle: "Show Name"},
		},
		{
			name: "season episode words",
			in:   "Show Name Season 2 Episode 9.mkv",
			want: Info{Season: 2, Episode: 9, Episodes: []int{9}, ShowTitle: "Show Name"},
		},
		{
			name: "compact three digit fallback",
			in:   "Show.Name.105.mkv",
			want: Info{Season: 1, Episode: 5, Episodes: []int{5}, ShowTitle: "Show Name"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
			if !got.IsEpisode() {
				t.Fatalf("Parse(%q) should report IsEpisode", tc.in)
			}
		})
	}
}

// An E01-E03 range records only the endpoints; the implied middle episode
// is not expanded.
func TestParseEpisodeRangeKeepsEndpointsOnly(t *testing.T) {
	got := Parse("Show.Name.S01E01-E03.mkv")
	if got.Season != 1 || got.Episode != 1 {
		t.Fatalf("unexpected season/episode: %+v", got)
	}
	if !reflect.DeepEqual(got.Episodes, []int{1, 3}) {
		t.Fatalf("expected endpoint episodes [1 3], got %v", got.Episodes)
	}
	if !got.IsMultiEpisode {
		t.Fatal("range should be flagged multi-episode")
	}
}

func TestParseNonEpisodes(t *testing.T) {
	inputs := []string{
		"Random.Movie.2024.mkv",
		"Movie.Title.2020.1080p.BluRay.x264.mkv",
		"Film.1920x1080.mkv",
		"",
		"just-a-name",
	}
	for _, in := range inputs {
		got := Parse(in)
		if got.IsEpisode() {
			t.Fatalf("Parse(%q) unexpectedly matched: %+v", in, got)
		}
		if got.Season != 0 || got.Episode != 0 || got.ShowTitle != "" {
			t.Fatalf("Parse(%q) should be zero, got %+v", in, got)
		}
	}
}

func TestParseRulePrecedence(t *testing.T) {
	// A name satisfying both the SxxExx rule and the 3-digit fallback must
	// resolve through the earlier rule.
	got := Parse("Show.Name.S02E04.101.mkv")
	if got.Season != 2 || got.Episode != 4 {
		t.Fatalf("expected SxxExx rule to win, got %+v", got)
	}
}

func TestParseSeasonEpisodeInvariant(t *testing.T) {
	inputs := []string{
		"Breaking.Bad.S01E01.Pilot.720p.mkv",
		"Show.Name.S01E01-E03.mkv",
		"Show Name 3x07.mkv",
		"Show.Name.105.mkv",
	}
	for _, in := range inputs {
		got := Parse(in)
		if !got.IsEpisode() {
			t.Fatalf("Parse(%q) should match", in)
		}
		found := false
		for _, ep := range got.Episodes {
			if ep == got.Episode {
				found = true
			}
		}
		if !found {
			t.Fatalf("Parse(%q): Episodes %v does not contain Episode %d", in, got.Episodes, got.Episode)
		}
	}
}
