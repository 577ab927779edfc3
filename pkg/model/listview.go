// Package model provides the data-row records shared between list widgets
// and the reflection bridge.
package model

// StandardListViewItem is the row record used by the standard list view.
// It is one of the concrete types a dynamic value can carry, so tools can
// populate list rows without knowing the widget type.
type StandardListViewItem struct {
	// Text is the row's display text.
	Text string
}
