package tablekit

// ItemType tags the kind of row an Item represents.
// Action is the only kind today; new kinds get their own payload on Item
// and their own case wherever the type is switched on.
type ItemType int

const (
	ItemTypeAction ItemType = iota // Runs an action block when selected
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeAction:
		return "action"
	default:
		return "unknown"
	}
}

// ActionBlock is the zero-argument callback run when an action row is selected.
type ActionBlock func()

// Item is a single selectable row. Items are immutable once built.
type Item struct {
	title    string
	itemType ItemType
	action   ActionBlock
}

// Action builds an action row. Selecting the row runs action once.
// A nil action panics with ErrNilAction.
func Action(title string, action ActionBlock) *Item {
	if action == nil {
		panic(ErrNilAction)
	}

	return &Item{
		title:    title,
		itemType: ItemTypeAction,
		action:   action,
	}
}

// Title returns the text shown for the row.
func (i *Item) Title() string {
	return i.title
}

// Type returns the item kind.
func (i *Item) Type() ItemType {
	return i.itemType
}

func (i *Item) perform() {
	switch i.itemType {
	case ItemTypeAction:
		i.action()
	}
}
