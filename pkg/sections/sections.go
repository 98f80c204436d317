// Package sections tracks the logical sections of status items on the bar:
// whether each one is collapsed and where its control item sits.
package sections

import (
	"github.com/go-drift/barskin/pkg/core"
	"github.com/go-drift/barskin/pkg/rendering"
)

// Name identifies a section.
type Name string

// Well-known section names.
const (
	Visible      Name = "visible"
	Hidden       Name = "hidden"
	AlwaysHidden Name = "always-hidden"
)

// Section is one group of status items.
type Section struct {
	name Name

	// IsHidden reports whether the section's items are collapsed.
	IsHidden *core.Observable[bool]
	// Position is the x coordinate of the section's control item, or nil
	// before the item has been laid out.
	Position *core.Observable[*float64]
}

func newSection(name Name) *Section {
	return &Section{
		name:     name,
		IsHidden: core.NewObservable(false),
		Position: core.NewObservableFunc[*float64](nil, positionEqual),
	}
}

func positionEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Name returns the section's name.
func (s *Section) Name() Name {
	return s.name
}

// Hidden returns the current hidden state.
func (s *Section) Hidden() bool {
	return s.IsHidden.Value()
}

// ControlPosition returns the current control item position. ok is false
// when the position is unknown.
func (s *Section) ControlPosition() (x float64, ok bool) {
	p := s.Position.Value()
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Changes fires when the hidden state or the position changes.
func (s *Section) Changes() core.Listenable {
	return core.Merge(s.IsHidden, s.Position)
}

// Tracker owns the sections of one bar.
//
// Like the observables it holds, a Tracker must only be mutated on the UI
// thread.
type Tracker struct {
	sections map[Name]*Section
	order    []Name

	screen    rendering.Rect
	hasScreen bool
}

// NewTracker creates a tracker with the given sections.
func NewTracker(names ...Name) *Tracker {
	t := &Tracker{sections: make(map[Name]*Section)}
	for _, n := range names {
		t.Add(n)
	}
	return t
}

// NewDefaultTracker creates a tracker with the visible, hidden and
// always-hidden sections.
func NewDefaultTracker() *Tracker {
	return NewTracker(Visible, Hidden, AlwaysHidden)
}

// Add returns the section called name, creating it if needed.
func (t *Tracker) Add(name Name) *Section {
	if s, ok := t.sections[name]; ok {
		return s
	}
	s := newSection(name)
	t.sections[name] = s
	t.order = append(t.order, name)
	return s
}

// Section looks up a section by name.
func (t *Tracker) Section(name Name) (*Section, bool) {
	if t == nil {
		return nil, false
	}
	s, ok := t.sections[name]
	return s, ok
}

// Names returns the section names in the order they were added.
func (t *Tracker) Names() []Name {
	return append([]Name(nil), t.order...)
}

// SetScreen records the frame of the screen the bar is on. Once set, only
// positions within the screen's horizontal extent are accepted.
func (t *Tracker) SetScreen(frame rendering.Rect) {
	t.screen = frame
	t.hasScreen = true
}

// UpdatePosition publishes a new control item position for the named
// section. Positions outside the screen are ignored, as they belong to
// items that are being moved between screens. It returns whether the
// position was accepted.
func (t *Tracker) UpdatePosition(name Name, x float64) bool {
	s, ok := t.sections[name]
	if !ok {
		return false
	}
	if t.hasScreen && (x < t.screen.Left || x > t.screen.Right) {
		return false
	}
	s.Position.Set(&x)
	return true
}

// ClearPosition marks the named section's position as unknown.
func (t *Tracker) ClearPosition(name Name) {
	if s, ok := t.sections[name]; ok {
		s.Position.Set(nil)
	}
}

// SetHidden publishes the hidden state of the named section.
func (t *Tracker) SetHidden(name Name, hidden bool) {
	if s, ok := t.sections[name]; ok {
		s.IsHidden.Set(hidden)
	}
}

// Changes fires whenever any section's hidden state or position changes.
// Sections added later are not included.
func (t *Tracker) Changes() core.Listenable {
	sources := make([]core.Listenable, 0, len(t.order))
	for _, n := range t.order {
		sources = append(sources, t.sections[n].Changes())
	}
	return core.Merge(sources...)
}
