package lists

import (
	"fmt"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// patchedLevels is how many nesting levels PatchBold touches.
const patchedLevels = 3

// PatchBold turns bold off for the number or bullet of the first three
// levels of numID's shared definition. Levels the definition lacks are
// skipped. It returns the number of levels changed; the change is visible
// to every numId sharing the definition.
func PatchBold(store *wml.NumberingStore, numID int) (int, error) {
	abstract, err := store.Abstract(numID)
	if err != nil {
		return 0, fmt.Errorf("patch bold: %w", err)
	}
	n := 0
	for i := 0; i < patchedLevels; i++ {
		lvl := abstract.Level(i)
		if lvl == nil {
			continue
		}
		if lvl.SetBold(false) {
			n++
		}
	}
	return n, nil
}
