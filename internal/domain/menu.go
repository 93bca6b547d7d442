package domain

// Category is a menu grouping (cut, color, perm, ...), owned by the salon API.
type Category struct {
	ID   int64
	Name string
}

// MenuOption is an add-on a customer may attach to a menu. Price and added
// duration are non-negative; both contribute to the selection's totals.
type MenuOption struct {
	ID                int64
	Name              string
	Description       string
	Price             int64 // KRW
	AdditionalMinutes int
}

// Menu is one bookable service from the salon's catalog. Immutable once
// fetched; owned by the catalog, read-only to the booking flow.
type Menu struct {
	ID              int64
	CategoryIDs     []int64
	Name            string
	Description     string
	ImageURL        string
	BasePrice       int64 // KRW
	PriceNote       string
	DurationMinutes int
	Options         []MenuOption
}

// Option looks up an option of the menu by id.
func (m *Menu) Option(optionID int64) (MenuOption, bool) {
	for _, opt := range m.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return MenuOption{}, false
}

// HasOption reports whether the menu carries an option with the given id.
func (m *Menu) HasOption(optionID int64) bool {
	_, ok := m.Option(optionID)
	return ok
}
