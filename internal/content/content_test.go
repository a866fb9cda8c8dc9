package content

import "testing"

func TestSlugsUnique(t *testing.T) {
	check := func(kind string, slugs []string) {
		seen := make(map[string]bool)
		for _, s := range slugs {
			if s == "" {
				t.Errorf("%s: empty slug", kind)
			}
			if seen[s] {
				t.Errorf("%s: duplicate slug %q", kind, s)
			}
			seen[s] = true
		}
	}

	var jobs, projects, tracks []string
	for _, j := range Experience {
		jobs = append(jobs, j.Slug)
	}
	for _, p := range Portfolio {
		projects = append(projects, p.Slug)
	}
	for _, tr := range Tracks {
		tracks = append(tracks, tr.Slug)
	}
	check("experience", jobs)
	check("portfolio", projects)
	check("tracks", tracks)
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"experience", len(Experience), 7},
		{"portfolio", len(Portfolio), 8},
		{"skills", len(Skills), 7},
		{"tracks", len(Tracks), 5},
		{"channels", len(Channels), 7},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("len(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestChannelIDsMatchIndex(t *testing.T) {
	for i, ch := range Channels {
		if ch.ID != i {
			t.Errorf("Channels[%d].ID = %d", i, ch.ID)
		}
	}
}

func TestVideoURL(t *testing.T) {
	if got := VideoURL("abc"); got != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("VideoURL = %q", got)
	}
}
