package terminal

import (
	"github.com/sahilm/fuzzy"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
)

// filterLines keeps the rows whose titles fuzzy-match query, with the
// headers of the sections they belong to. It also returns the best match.
func filterLines(lines []tablekit.Line, query string) ([]tablekit.Line, tablekit.IndexPath, bool) {
	if query == "" {
		return lines, tablekit.IndexPath{}, false
	}

	var titles []string
	var rows []tablekit.Line
	for _, l := range lines {
		if l.Kind == tablekit.LineRow {
			titles = append(titles, l.Text)
			rows = append(rows, l)
		}
	}

	matches := fuzzy.Find(query, titles)
	if len(matches) == 0 {
		return nil, tablekit.IndexPath{}, false
	}

	keep := make(map[tablekit.IndexPath]bool, len(matches))
	sections := make(map[int]bool)
	for _, match := range matches {
		path := rows[match.Index].IndexPath
		keep[path] = true
		sections[path.Section] = true
	}

	var filtered []tablekit.Line
	lastSection := -1
	for _, l := range lines {
		switch l.Kind {
		case tablekit.LineHeader:
			if sections[l.IndexPath.Section] {
				filtered = appendSpacer(filtered, &lastSection, l.IndexPath.Section)
				filtered = append(filtered, l)
			}
		case tablekit.LineRow:
			if keep[l.IndexPath] {
				filtered = appendSpacer(filtered, &lastSection, l.IndexPath.Section)
				filtered = append(filtered, l)
			}
		}
	}

	return filtered, rows[matches[0].Index].IndexPath, true
}

func appendSpacer(lines []tablekit.Line, lastSection *int, section int) []tablekit.Line {
	if *lastSection != section {
		if *lastSection >= 0 {
			lines = append(lines, tablekit.Line{
				Kind:      tablekit.LineSpacer,
				IndexPath: tablekit.IndexPath{Section: section, Row: -1},
			})
		}
		*lastSection = section
	}
	return lines
}
