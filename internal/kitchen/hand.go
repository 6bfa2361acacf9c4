package kitchen

// HandKind tells what the chef is holding.
type HandKind int

const (
	HandEmpty HandKind = iota
	HandIngredient
	HandPlate
)

func (k HandKind) String() string {
	switch k {
	case HandIngredient:
		return "ingredient"
	case HandPlate:
		return "plate"
	default:
		return "empty"
	}
}

// Hand is what the chef holds: nothing, one ingredient, or one plate.
// The zero value is an empty hand. Only the field matching kind is set.
type Hand struct {
	kind  HandKind
	item  Instance
	plate Plate
}

func holdingIngredient(item Instance) Hand {
	return Hand{kind: HandIngredient, item: item}
}

func holdingPlate(p Plate) Hand {
	return Hand{kind: HandPlate, plate: p}
}

// Kind returns what is held.
func (h Hand) Kind() HandKind {
	return h.kind
}

// IsEmpty reports whether nothing is held.
func (h Hand) IsEmpty() bool {
	return h.kind == HandEmpty
}

// Ingredient returns the held ingredient instance, if any.
func (h Hand) Ingredient() (Instance, bool) {
	return h.item, h.kind == HandIngredient
}

// Plate returns a copy of the held plate, if any.
func (h Hand) Plate() (Plate, bool) {
	if h.kind != HandPlate {
		return Plate{}, false
	}
	return h.plate.clone(), true
}
