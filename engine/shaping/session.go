package shaping

import (
	"errors"
	"math"

	"github.com/npillmayer/otsession/core/font"
	"github.com/npillmayer/otsession/core/tag"
)

// Session holds the configuration for shaping runs of text with a backend.
// The zero value is not usable; create sessions with NewSession.
//
// The session holds a reference to its font but does not own it. Fonts are
// expected not to change while a session refers to them.
type Session struct {
	backend     Backend
	font        *font.ScalableFont
	typeSize    float64
	scriptTag   tag.Tag
	languageTag tag.Tag
	layout      Layout // intent, may hold defaults
}

// NewSession creates a session for a shaping backend. Font and type size are
// unset, script and language tags are tag.None, mode and direction are default.
func NewSession(backend Backend) *Session {
	return &Session{backend: backend}
}

// Backend returns the session's shaping backend.
func (s *Session) Backend() Backend {
	return s.backend
}

// Font returns the font to shape with, or nil.
func (s *Session) Font() *font.ScalableFont {
	return s.font
}

// SetFont sets the font to shape with. A nil font unsets the font.
func (s *Session) SetFont(f *font.ScalableFont) {
	s.font = f
}

// TypeSize returns the type size, or 0 if unset.
func (s *Session) TypeSize() float64 {
	return s.typeSize
}

// SetTypeSize sets the type size. Sizes have no upper bound, but must be
// positive and finite. An invalid size is rejected with a ConfigurationError
// and the previous size is kept.
func (s *Session) SetTypeSize(size float64) error {
	if !validTypeSize(size) {
		return configError(ErrInvalidTypeSize, "%g", size)
	}
	s.typeSize = size
	return nil
}

func validTypeSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0) && !math.IsNaN(size)
}

// ScriptTag returns the OpenType script tag.
func (s *Session) ScriptTag() tag.Tag {
	return s.scriptTag
}

// SetScriptTag sets the OpenType script tag. tag.None means no script.
func (s *Session) SetScriptTag(t tag.Tag) {
	s.scriptTag = t
}

// LanguageTag returns the OpenType language system tag.
func (s *Session) LanguageTag() tag.Tag {
	return s.languageTag
}

// SetLanguageTag sets the OpenType language system tag. tag.None means
// the default language system.
func (s *Session) SetLanguageTag(t tag.Tag) {
	s.languageTag = t
}

// TextMode returns the writing mode as set, never a resolved one.
func (s *Session) TextMode() WritingMode {
	return s.layout.Mode
}

// SetTextMode sets the writing mode. ModeDefault lets the writing direction
// decide at shaping time. Setting the mode leaves the direction alone.
func (s *Session) SetTextMode(mode WritingMode) error {
	if !mode.IsValid() {
		return configError(ErrInvalidMode, "%v", mode)
	}
	s.layout.Mode = mode
	return nil
}

// TextDirection returns the writing direction as set, never a resolved one.
func (s *Session) TextDirection() WritingDirection {
	return s.layout.Direction
}

// SetTextDirection sets the writing direction. DirectionDefault lets the
// script decide at shaping time. Direction and mode are not checked against
// each other.
func (s *Session) SetTextDirection(dir WritingDirection) error {
	if !dir.IsValid() {
		return configError(ErrInvalidDirection, "%v", dir)
	}
	s.layout.Direction = dir
	return nil
}

// Layout returns mode and direction as set.
func (s *Session) Layout() Layout {
	return s.layout
}

// ResolvedLayout returns mode and direction as ShapeText would use them with
// the current configuration. The session is not changed.
func (s *Session) ResolvedLayout() Layout {
	return Resolve(s.layout, s.scriptTag, s.backend)
}

// ScriptDefaultDirection returns the backend's default direction for a script.
func (s *Session) ScriptDefaultDirection(script tag.Tag) WritingDirection {
	return ScriptDefaultDirection(s.backend, script)
}

// ShapeText shapes text[start:end] into result.
//
// An empty range is valid and produces a result without glyphs. Neither
// shaping nor the backend's direction table is consulted for it. Errors are
//
//   - *ConfigurationError if backend, font, type size or result is missing,
//     or if the direction of a non-empty range cannot be resolved
//   - *RangeError if the range is inverted or exceeds text
//   - *ShapingError if the backend failed
//
// Checks are done before the backend is called. The session itself is never
// changed by ShapeText, and the content of result is undefined after an error.
func (s *Session) ShapeText(result *Result, text []rune, start, end int) error {
	if s.backend == nil {
		return &ConfigurationError{Err: ErrNoBackend}
	}
	if s.font == nil {
		return &ConfigurationError{Err: ErrNoFont}
	}
	if !validTypeSize(s.typeSize) {
		return configError(ErrInvalidTypeSize, "type size is %g", s.typeSize)
	}
	if result == nil {
		return &ConfigurationError{Err: ErrNilResult}
	}
	if start < 0 || end > len(text) || start > end {
		return &RangeError{Start: start, End: end, Length: len(text)}
	}
	if start == end {
		// Without text the script's direction is irrelevant; only an explicit
		// mode or direction decides the glyph order.
		result.Reset(s.request(Resolve(s.layout, s.scriptTag, nil), text, start, end))
		return nil
	}
	layout := s.ResolvedLayout()
	tracer().Debugf("shaping [%d,%d) script=%s lang=%s, %v/%v resolves to %v/%v",
		start, end, s.scriptTag, s.languageTag,
		s.layout.Mode, s.layout.Direction, layout.Mode, layout.Direction)
	if !layout.IsResolved() {
		return configError(ErrNoScriptDirection, "script %s", s.scriptTag)
	}
	req := s.request(layout, text, start, end)
	if err := s.backend.Shape(req, result); err != nil {
		tracer().Errorf("backend failed to shape [%d,%d): %v", start, end, err)
		var serr *ShapingError
		if errors.As(err, &serr) {
			return err
		}
		return &ShapingError{Err: err}
	}
	return nil
}

func (s *Session) request(layout Layout, text []rune, start, end int) Request {
	return Request{
		Font:        s.font,
		TypeSize:    s.typeSize,
		ScriptTag:   s.scriptTag,
		LanguageTag: s.languageTag,
		Mode:        layout.Mode,
		Direction:   layout.Direction,
		Text:        text,
		Start:       start,
		End:         end,
	}
}
