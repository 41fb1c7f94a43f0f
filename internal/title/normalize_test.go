package title

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		title string
		year  string
	}{
		{"bracketed year", "The Movie (2024)", "movie", "2024"},
		{"bare year", "The Movie 2024", "movie", "2024"},
		{"dotted release name", "Movie.Title.2020.1080p.BluRay.x264.mkv", "movie title", "2020"},
		{"spaced release name", "Movie Title (2020)", "movie title", "2020"},
		{"uppercase no year", "THE MOVIE NAME", "movie name", ""},
		{"quality tags without year", "Some.Film.1080p.WEBRip.mkv", "some film", ""},
		{"leading article a", "A Quiet Film (2019)", "quiet film", "2019"},
		{"leading article an", "An Ordinary Story 2001", "ordinary story", "2001"},
		{"underscores and dashes", "some_movie-title 1999", "some movie title", "1999"},
		{"empty input", "", "", ""},
		{"year only", "2020", "", "2020"},
		{"extension only stripped when known", "Plan.9", "plan 9", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got.Title != tc.title {
				t.Fatalf("Normalize(%q).Title = %q, want %q", tc.input, got.Title, tc.title)
			}
			if got.Year != tc.year {
				t.Fatalf("Normalize(%q).Year = %q, want %q", tc.input, got.Year, tc.year)
			}
		})
	}
}

// Article removal is single-pass, so a title that still opens with an
// article after normalization loses another one when renormalized.
func TestNormalizeStripsOneArticlePerPass(t *testing.T) {
	once := Normalize("The The Movie (2024)")
	if once.Title != "the movie" {
		t.Fatalf("first pass = %q, want %q", once.Title, "the movie")
	}
	twice := Normalize(once.Title)
	if twice.Title != "movie" {
		t.Fatalf("second pass = %q, want %q", twice.Title, "movie")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Movie.Title.2020.1080p.BluRay.x264.mkv",
		"The Movie (2024)",
		"THE MOVIE NAME",
		"the.office.s02e05.720p.mkv",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once.Title)
		if twice.Title != once.Title {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", input, once.Title, twice.Title)
		}
	}
}

func TestDisplay(t *testing.T) {
	cases := map[string]string{
		"movie.title.2020.1080p.BluRay.mkv": "Movie Title",
		"THE MOVIE NAME":                    "Movie Name",
		"":                                  "Unknown",
	}
	for input, want := range cases {
		if got := Display(input); got != want {
			t.Fatalf("Display(%q) = %q, want %q", input, got, want)
		}
	}
}
