package shaping

import "github.com/npillmayer/otsession/core/tag"

// DirectionTable answers the default writing direction of a script.
// Shaping backends implement it; an unknown or zero script tag is answered
// by the backend's own convention.
type DirectionTable interface {
	ScriptDefaultDirection(script tag.Tag) WritingDirection
}

// ScriptDefaultDirection looks up the default direction of a script in a
// backend's direction table. The script tag is forwarded unchanged.
func ScriptDefaultDirection(table DirectionTable, script tag.Tag) WritingDirection {
	if table == nil {
		return DirectionDefault
	}
	return table.ScriptDefaultDirection(script)
}

// Layout is the pair of writing mode and writing direction. Stored in a
// session it expresses intent and may contain defaults; returned by Resolve
// it is concrete.
type Layout struct {
	Mode      WritingMode
	Direction WritingDirection
}

// IsResolved is true if neither mode nor direction is a default.
func (l Layout) IsResolved() bool {
	return l.Mode != ModeDefault && l.Direction != DirectionDefault
}

// Resolve turns a layout intent into a concrete layout.
//
// A default direction is replaced by the script's direction, which is
// requested from lookup only in this case. A default mode follows the
// resolved direction: right-to-left shapes backward, everything else
// forward. A forced mode always wins over the direction.
//
// If lookup answers DirectionDefault, the resolved direction stays default
// and the mode is derived as forward; callers must check IsResolved.
func Resolve(intent Layout, script tag.Tag, lookup DirectionTable) Layout {
	resolved := intent
	if resolved.Direction == DirectionDefault {
		resolved.Direction = ScriptDefaultDirection(lookup, script)
	}
	if resolved.Mode == ModeDefault {
		resolved.Mode = modeFor(resolved.Direction)
	}
	return resolved
}

func modeFor(dir WritingDirection) WritingMode {
	if dir == RightToLeft {
		return ModeBackward
	}
	return ModeForward
}
