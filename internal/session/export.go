package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// SnapshotExport is the JSON-serializable scene state.
type SnapshotExport struct {
	Elapsed float64      `json:"elapsed_seconds"`
	Scale   float64      `json:"scale"`
	Mode    string       `json:"mode"`
	Bodies  []BodyExport `json:"bodies"`
	Events  []Event      `json:"events,omitempty"`

	Published int `json:"published_bodies"`
}

// BodyExport is a JSON-friendly body with its current position.
type BodyExport struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Kind        string  `json:"kind"`
	Radius      float64 `json:"radius"`
	Speed       float64 `json:"speed"`
	Inclination float64 `json:"inclination"`
	Angle       float64 `json:"angle"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Published   bool    `json:"published"`
	Locked      bool    `json:"locked,omitempty"`
	External    string  `json:"external_url,omitempty"`
}

// Export captures the current scene.
func (s *Session) Export() *SnapshotExport {
	s.mu.Lock()
	defer s.mu.Unlock()

	export := &SnapshotExport{
		Elapsed: s.elapsed,
		Scale:   s.orbits.Scale(),
		Mode:    s.machine.State().String(),
		Events:  s.events.ordered(),

		Published: s.reg.Len(),
	}
	positions := s.reg.Snapshot()
	for _, b := range s.catalog.Bodies {
		be := BodyExport{
			ID:          b.ID,
			Label:       b.Label,
			Kind:        b.Kind.String(),
			Radius:      b.Orbit.Radius,
			Speed:       b.Orbit.Speed,
			Inclination: b.Orbit.Inclination,
			Locked:      b.Locked,
			External:    b.ExternalURL,
		}
		be.Angle, _ = s.orbits.Angle(b.ID)
		pos, published := positions[b.ID]
		if !published {
			pos, _ = s.orbits.Position(b.ID)
		}
		be.X, be.Y, be.Z = pos.X, pos.Y, pos.Z
		be.Published = published
		export.Bodies = append(export.Bodies, be)
	}
	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (e *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes a text table of bodies and positions.
func WriteSummaryTable(w io.Writer, e *SnapshotExport) {
	fmt.Fprintf(w, "Galaxy @ t=%.1fs  scale %.2f  %s  %d/%d published\n",
		e.Elapsed, e.Scale, e.Mode, e.Published, len(e.Bodies))
	fmt.Fprintln(w, strings.Repeat("─", 86))

	if len(e.Bodies) == 0 {
		fmt.Fprintln(w, "No bodies")
		return
	}

	fmt.Fprintf(w, "%-10s %-14s %-14s %6s %6s %6s %8s %8s %8s\n",
		"ID", "Label", "Kind", "Radius", "Speed", "Incl", "X", "Y", "Z")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, b := range e.Bodies {
		fmt.Fprintf(w, "%-10s %-14s %-14s %6.1f %6.3f %6.2f %8.2f %8.2f %8.2f\n",
			truncateStr(b.ID, 10),
			truncateStr(b.Label, 14),
			truncateStr(b.Kind, 14),
			b.Radius, b.Speed, b.Inclination,
			b.X, b.Y, b.Z,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d bodies\n", len(e.Bodies))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
