package tablekit

import "fmt"

// IndexPath addresses one row: sections[Section].items[Row].
type IndexPath struct {
	Section int
	Row     int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("%d.%d", p.Section, p.Row)
}

// Cursor is a host's resume state for a screen: the focused row and the
// first visible line. The Navigator stores it on the stack so a screen can
// restore its position when a child is dismissed.
type Cursor struct {
	IndexPath
	Offset int
}

// InteractionKind is the way a show pass ended.
type InteractionKind int

const (
	InteractionSelected InteractionKind = iota // User activated a row
	InteractionBack                            // User dismissed the screen
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionSelected:
		return "selected"
	case InteractionBack:
		return "back"
	default:
		return "unknown"
	}
}

// Interaction is what a Host returns from one show pass.
type Interaction struct {
	Kind      InteractionKind
	IndexPath IndexPath // Selected row, valid for InteractionSelected
	Cursor    Cursor    // Position to restore when the screen is shown again
	Snapshot  *Snapshot // Tree the selection was made against; nil resolves against the live tree
}

// Selected builds a selection interaction for the row at path.
func Selected(snap *Snapshot, path IndexPath, cursor Cursor) Interaction {
	return Interaction{
		Kind:      InteractionSelected,
		IndexPath: path,
		Cursor:    cursor,
		Snapshot:  snap,
	}
}

// Back builds a dismissal interaction.
func Back(cursor Cursor) Interaction {
	return Interaction{Kind: InteractionBack, Cursor: cursor}
}
