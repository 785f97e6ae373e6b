package wml

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrNoNumbering is returned when the document has no numbering store.
	ErrNoNumbering = errors.New("wml: document has no numbering store")
	// ErrUnknownNumID is returned for a numId the store does not define.
	ErrUnknownNumID = errors.New("wml: unknown numId")
	// ErrUnknownAbstract is returned when a numId maps to a missing abstract definition.
	ErrUnknownAbstract = errors.New("wml: unknown abstract numbering definition")
	// ErrUnknownLevel is returned when an abstract definition lacks the requested level.
	ErrUnknownLevel = errors.New("wml: numbering level not defined")
)

// ListType represents the type of list a numbering level produces.
type ListType int

const (
	ListTypeUnordered ListType = iota // Bullet list
	ListTypeOrdered                   // Numbered list
)

// Number formats (numFmt values).
const (
	FormatDecimal     = "decimal"
	FormatBullet      = "bullet"
	FormatLowerLetter = "lowerLetter"
	FormatUpperLetter = "upperLetter"
	FormatLowerRoman  = "lowerRoman"
	FormatUpperRoman  = "upperRoman"
)

// RunProps is the run formatting applied to a level's number or bullet.
type RunProps struct {
	Font  string
	Size  float64 // points
	Color string
	Bold  *bool // nil = inherit
}

// Property is one entry of a level's serialized run-property tree.
type Property struct {
	Name string
	Val  string
}

// Level is one nesting depth of an abstract numbering definition. It is the
// single source of truth for both the object view (fields and setters) and
// the serialized view (RunPropertyTree).
type Level struct {
	Index  int
	Format string // numFmt
	Text   string // lvlText, e.g. "%1."
	Start  int
	Run    RunProps
	Indent Indent
}

// IsOrdered reports whether the level produces numbers rather than bullets.
func (l *Level) IsOrdered() bool {
	switch l.Format {
	case FormatDecimal, FormatLowerLetter, FormatUpperLetter, FormatLowerRoman, FormatUpperRoman:
		return true
	}
	return false
}

// SetBold sets the level's bold flag and reports whether it changed.
func (l *Level) SetBold(bold bool) bool {
	if l.Run.Bold != nil && *l.Run.Bold == bold {
		return false
	}
	l.Run.Bold = &bold
	return true
}

// SetIndent replaces the level indentation and reports whether it changed.
func (l *Level) SetIndent(ind Indent) bool {
	if l.Indent == ind {
		return false
	}
	l.Indent = ind
	return true
}

// RunPropertyTree renders the level's run properties the way they are
// serialized (w:rPr children). It is derived from Run on every call.
func (l *Level) RunPropertyTree() []Property {
	var props []Property
	if l.Run.Font != "" {
		props = append(props, Property{Name: "rFonts", Val: l.Run.Font})
	}
	if l.Run.Bold != nil {
		val := "0"
		if *l.Run.Bold {
			val = "1"
		}
		props = append(props, Property{Name: "b", Val: val})
	}
	if l.Run.Color != "" {
		props = append(props, Property{Name: "color", Val: l.Run.Color})
	}
	if l.Run.Size > 0 {
		props = append(props, Property{Name: "sz", Val: strconv.Itoa(int(l.Run.Size * 2))})
	}
	return props
}

// AbstractNum is a shared numbering definition.
type AbstractNum struct {
	ID     int
	Levels []*Level
}

// Level returns the definition of level i, or nil.
func (a *AbstractNum) Level(i int) *Level {
	for _, lvl := range a.Levels {
		if lvl.Index == i {
			return lvl
		}
	}
	return nil
}

// NumberingStore resolves numbering references to their definitions.
type NumberingStore struct {
	abstracts map[int]*AbstractNum // abstractNumId -> definition
	nums      map[int]int          // numId -> abstractNumId
	order     []int                // numIds in insertion order
}

// NewNumberingStore creates an empty store.
func NewNumberingStore() *NumberingStore {
	return &NumberingStore{
		abstracts: make(map[int]*AbstractNum),
		nums:      make(map[int]int),
	}
}

// AddAbstract registers an abstract definition, replacing any with the same id.
func (s *NumberingStore) AddAbstract(a *AbstractNum) {
	s.abstracts[a.ID] = a
}

// AddNum maps numID to an existing abstract definition.
func (s *NumberingStore) AddNum(numID, abstractID int) error {
	if _, ok := s.abstracts[abstractID]; !ok {
		return fmt.Errorf("numId %d: %w (abstractNumId %d)", numID, ErrUnknownAbstract, abstractID)
	}
	if _, exists := s.nums[numID]; !exists {
		s.order = append(s.order, numID)
	}
	s.nums[numID] = abstractID
	return nil
}

// Has reports whether numID is defined. A nil store defines nothing.
func (s *NumberingStore) Has(numID int) bool {
	if s == nil {
		return false
	}
	_, ok := s.nums[numID]
	return ok
}

// NumIDs returns the defined numIds in insertion order.
func (s *NumberingStore) NumIDs() []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s.order...)
}

// Abstracts returns the abstract definitions ordered by id.
func (s *NumberingStore) Abstracts() []*AbstractNum {
	if s == nil {
		return nil
	}
	out := make([]*AbstractNum, 0, len(s.abstracts))
	for _, a := range s.abstracts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AbstractID returns the abstract definition id numID maps to.
func (s *NumberingStore) AbstractID(numID int) (int, bool) {
	if s == nil {
		return 0, false
	}
	id, ok := s.nums[numID]
	return id, ok
}

// Abstract returns the abstract definition behind numID.
func (s *NumberingStore) Abstract(numID int) (*AbstractNum, error) {
	if s == nil {
		return nil, ErrNoNumbering
	}
	abstractID, ok := s.nums[numID]
	if !ok {
		return nil, fmt.Errorf("numId %d: %w", numID, ErrUnknownNumID)
	}
	abstract, ok := s.abstracts[abstractID]
	if !ok {
		return nil, fmt.Errorf("numId %d: %w (abstractNumId %d)", numID, ErrUnknownAbstract, abstractID)
	}
	return abstract, nil
}

// Level returns the level definition a reference points at.
func (s *NumberingStore) Level(ref NumberingRef) (*Level, error) {
	abstract, err := s.Abstract(ref.NumID)
	if err != nil {
		return nil, err
	}
	lvl := abstract.Level(ref.Level)
	if lvl == nil {
		return nil, fmt.Errorf("numId %d level %d: %w", ref.NumID, ref.Level, ErrUnknownLevel)
	}
	return lvl, nil
}

// IsDecimalTop reports whether the top level of numID's definition uses
// decimal numbering.
func (s *NumberingStore) IsDecimalTop(numID int) bool {
	lvl, err := s.Level(NumberingRef{NumID: numID, Level: 0})
	if err != nil {
		return false
	}
	return lvl.Format == FormatDecimal
}

// ResolveLevel returns the list type and start value for a reference.
// Unknown references resolve to a bullet list starting at 1.
func (s *NumberingStore) ResolveLevel(ref NumberingRef) (listType ListType, startAt int) {
	listType = ListTypeUnordered
	startAt = 1

	lvl, err := s.Level(ref)
	if err != nil {
		return
	}
	if lvl.IsOrdered() {
		listType = ListTypeOrdered
	}
	if lvl.Start > 0 {
		startAt = lvl.Start
	}
	return
}

// NewDecimalAbstract builds an outline definition with the given number of
// levels: decimal, lowerLetter and lowerRoman, repeating.
func NewDecimalAbstract(id, levels int) *AbstractNum {
	formats := []string{FormatDecimal, FormatLowerLetter, FormatLowerRoman}
	a := &AbstractNum{ID: id}
	for i := 0; i < levels; i++ {
		a.Levels = append(a.Levels, &Level{
			Index:  i,
			Format: formats[i%len(formats)],
			Text:   "%" + strconv.Itoa(i+1) + ".",
			Start:  1,
			Indent: Indent{Left: float64(36 * (i + 1)), Hanging: 18},
		})
	}
	return a
}

// NewBulletAbstract builds a bullet definition with the given number of levels.
func NewBulletAbstract(id, levels int) *AbstractNum {
	bullets := []string{"•", "○", "■"}
	a := &AbstractNum{ID: id}
	for i := 0; i < levels; i++ {
		a.Levels = append(a.Levels, &Level{
			Index:  i,
			Format: FormatBullet,
			Text:   bullets[i%len(bullets)],
			Start:  1,
			Indent: Indent{Left: float64(36 * (i + 1)), Hanging: 18},
		})
	}
	return a
}
