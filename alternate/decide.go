package alternate

import (
	"github.com/joshuarubin/go-sway"

	"github.com/kndndrj/sway-alternate/internal/core"
)

// Decide determines which way the parent of the focused window should be split,
// so that the next window opened next to it alternates orientation.
// false is returned when no command needs to be sent.
func Decide(focused, parent *sway.Node) (core.Direction, bool) {
	if focused == nil || parent == nil {
		return 0, false
	}

	// splitting is meaningless in these containers
	if parent.Layout == "tabbed" || parent.Layout == "stacked" {
		return 0, false
	}

	// square windows count as landscape
	if focused.Rect.Height > focused.Rect.Width {
		if parent.Orientation == "horizontal" {
			return core.DirectionVertical, true
		}
		return 0, false
	}

	if parent.Orientation == "vertical" {
		return core.DirectionHorizontal, true
	}

	return 0, false
}
