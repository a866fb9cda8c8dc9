package menu

import (
	"time"

	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/media"
)

// PageView is the render-agnostic content of the current page.
type PageView struct {
	Page      Page
	Title     string
	Items     []string // List pages
	Active    int
	Lines     []string // Detail pages
	Scroll    int
	Direction Direction
	Playing   bool
	Now       *NowPlaying // Now-playing page only
}

// NowPlaying is the now-playing page content.
type NowPlaying struct {
	Track     content.Track
	Number    int // 1-based
	Count     int
	Elapsed   string
	Remaining string
	Progress  float64 // [0,1]
}

// View returns what the current page shows.
func (e *Engine) View() PageView {
	s := e.state
	v := PageView{
		Page:      s.Page,
		Title:     e.cfg.Title,
		Active:    s.Index,
		Scroll:    s.Scroll,
		Direction: s.Transition,
		Playing:   s.Playback.Playing,
	}

	switch s.Page {
	case PageMain:
		for _, it := range mainMenu {
			v.Items = append(v.Items, it.title)
		}
	case PageExperience:
		v.Title = "Experience"
		for _, j := range e.lib.Experience {
			v.Items = append(v.Items, j.JobTitle)
		}
	case PageSkills:
		v.Title = "Skills"
		for _, g := range e.lib.Skills {
			v.Items = append(v.Items, g.Title)
		}
	case PagePortfolio:
		v.Title = "Portfolio"
		for _, p := range e.lib.Portfolio {
			v.Items = append(v.Items, p.Title)
		}
	case PageExperienceDetail:
		if s.Detail < len(e.lib.Experience) {
			v.Title = e.lib.Experience[s.Detail].Company
		}
		v.Lines = e.detailLines()
	case PageSkillsDetail:
		if s.Detail < len(e.lib.Skills) {
			v.Title = e.lib.Skills[s.Detail].Title
		}
		v.Lines = e.detailLines()
	case PagePortfolioDetail:
		if s.Detail < len(e.lib.Portfolio) {
			v.Title = e.lib.Portfolio[s.Detail].Title
		}
		v.Lines = e.detailLines()
	case PageEducation:
		v.Title = "Education"
		v.Lines = e.detailLines()
	case PageNowPlaying:
		v.Title = "Now Playing"
		v.Now = e.nowPlaying()
	}
	return v
}

// detailLines returns the text of the current scrollable page.
func (e *Engine) detailLines() []string {
	s := e.state
	switch s.Page {
	case PageExperienceDetail:
		if s.Detail >= len(e.lib.Experience) {
			return nil
		}
		j := e.lib.Experience[s.Detail]
		lines := []string{j.JobTitle, j.Company, j.Tenure, ""}
		for _, t := range j.Tasks {
			lines = append(lines, "• "+t)
		}
		return append(lines, "", j.Summary)
	case PageSkillsDetail:
		if s.Detail >= len(e.lib.Skills) {
			return nil
		}
		return append([]string(nil), e.lib.Skills[s.Detail].Skills...)
	case PagePortfolioDetail:
		if s.Detail >= len(e.lib.Portfolio) {
			return nil
		}
		p := e.lib.Portfolio[s.Detail]
		return []string{p.Title, p.Tech, p.URL}
	case PageEducation:
		return []string{"Education", e.lib.Education.Name, "Major: " + e.lib.Education.Major}
	}
	return nil
}

func (e *Engine) nowPlaying() *NowPlaying {
	pb := e.state.Playback
	if len(e.lib.Tracks) == 0 {
		return nil
	}
	np := &NowPlaying{
		Track:     e.lib.Tracks[pb.Track],
		Number:    pb.Track + 1,
		Count:     len(e.lib.Tracks),
		Elapsed:   "0:00",
		Remaining: "0:00",
	}
	if pb.Duration > 0 {
		elapsed := seconds(pb.Elapsed)
		total := seconds(pb.Duration)
		np.Progress = pb.Elapsed / pb.Duration
		np.Elapsed = media.FormatTime(elapsed)
		np.Remaining = "-" + media.FormatTime(total-elapsed)
	}
	return np
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
