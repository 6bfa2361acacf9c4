// Package kitchen implements the interaction and state-machine core of the
// cooking game: what the chef holds, where items go, how they change over
// time and how served plates are scored. It has no rendering, input or timer
// dependencies; the platform drives it with abstract events.
package kitchen

import (
	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
)

// Stage is the processing state of an ingredient.
type Stage int

const (
	StageRaw Stage = iota
	StageChopped
)

func (s Stage) String() string {
	if s == StageChopped {
		return "chopped"
	}
	return "raw"
}

const choppedSuffix = "_chopped"

// Ingredient is a named ingredient at a processing stage.
type Ingredient struct {
	Name  string
	Stage Stage
}

// Key returns the content key used on plates and in the pot,
// e.g. "tomato" or "tomato_chopped".
func (i Ingredient) Key() string {
	if i.Stage == StageChopped {
		return i.Name + choppedSuffix
	}
	return i.Name
}

// InstanceID identifies one picked-up ingredient for as long as it exists.
// The presentation layer maps these to its own render handles.
type InstanceID string

// Instance is an ingredient that exists somewhere in the kitchen: in hand, on
// the board, in the pot or on the floor. Spawn points are not instances.
type Instance struct {
	ID         InstanceID
	Ingredient Ingredient
	Rect       core.Rect
}

// PlateID identifies a plate between pickup and serve/trash.
type PlateID string

// Plate is an ordered list of content keys.
type Plate struct {
	ID       PlateID
	Contents []string
}

// Key returns the composite key of the plate contents.
func (p Plate) Key() string {
	return CompositeKey(p.Contents)
}

func (p Plate) clone() Plate {
	p.Contents = append([]string(nil), p.Contents...)
	return p
}

// DroppedPlate is a plate lying on the floor.
type DroppedPlate struct {
	Plate
	Rect core.Rect
}

// CompositeKey sorts the contents and joins them with "_". Two plates with
// the same multiset of contents share a key. An empty plate has key "".
func CompositeKey(contents []string) string {
	return config.CompositeKey(contents)
}
