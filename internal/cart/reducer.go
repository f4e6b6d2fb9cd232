package cart

import "fmt"

// Reduce maps (state, action) to a new state. It is pure and total: every
// action is defined for every state, the input state is never mutated, and
// the same inputs always produce the same output.
func Reduce(state State, action Action) State {
	switch a := action.(type) {

	case AddProduct:
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		id := productLineID(a.Product.ID, a.Notes, a.Customizations)
		if next, merged := mergeQuantity(state, id, qty); merged {
			return next
		}
		return appendLine(state, Line{
			ID:             id,
			Kind:           KindProduct,
			DisplayName:    a.Product.Name,
			Description:    a.Product.Description,
			ImageURL:       a.Product.Image,
			UnitPrice:      a.Product.Price,
			Quantity:       qty,
			Notes:          a.Notes,
			Customizations: copyStrings(a.Customizations),
			ProductID:      a.Product.ID,
		})

	case AddProductVariant:
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		id := variantLineID(a.Product.ID, a.Variant.ID, a.Notes, a.Customizations)
		if next, merged := mergeQuantity(state, id, qty); merged {
			return next
		}
		return appendLine(state, Line{
			ID:              id,
			Kind:            KindProductVariant,
			DisplayName:     fmt.Sprintf("%s (%s)", a.Product.Name, a.Variant.Name),
			Description:     a.Product.Description,
			ImageURL:        a.Product.Image,
			UnitPrice:       variantUnitPrice(a.Product, a.Variant),
			Quantity:        qty,
			Notes:           a.Notes,
			Customizations:  copyStrings(a.Customizations),
			ProductID:       a.Product.ID,
			VariantID:       a.Variant.ID,
			VariantName:     a.Variant.Name,
			BaseProductName: a.Product.Name,
		})

	case AddFoodCombo:
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		id := comboLineID(a.Combo.ID, a.Notes, a.Customizations)
		if next, merged := mergeQuantity(state, id, qty); merged {
			return next
		}
		items := make([]ComboItem, len(a.Combo.ComboItems))
		copy(items, a.Combo.ComboItems)
		return appendLine(state, Line{
			ID:             id,
			Kind:           KindFoodCombo,
			DisplayName:    a.Combo.Name,
			Description:    a.Combo.Description,
			ImageURL:       a.Combo.Image,
			UnitPrice:      a.Combo.EffectivePrice,
			Quantity:       qty,
			Notes:          a.Notes,
			Customizations: copyStrings(a.Customizations),
			ComboID:        a.Combo.ID,
			ItemCount:      a.Combo.ItemsCount,
			ComboItems:     items,
		})

	case AddLegacyItem:
		// Legacy matching is intentionally narrower than the derived-id
		// scheme: (display name, notes) equality, customizations ignored.
		for i, line := range state.Lines {
			if line.Kind == KindLegacy && line.DisplayName == a.Item.Name && line.Notes == a.Notes {
				return bumpQuantity(state, i, 1)
			}
		}
		return appendLine(state, Line{
			ID:             a.NewLineID,
			Kind:           KindLegacy,
			DisplayName:    a.Item.Name,
			Description:    a.Item.Description,
			ImageURL:       a.Item.Image,
			UnitPrice:      a.Item.Price,
			Quantity:       1,
			Notes:          a.Notes,
			Customizations: copyStrings(a.Customizations),
			LegacyItemID:   a.Item.ID,
		})

	case RemoveLine:
		return removeLine(state, a.LineID)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return removeLine(state, a.LineID)
		}
		for i, line := range state.Lines {
			if line.ID == a.LineID {
				lines := copyLines(state.Lines)
				lines[i].Quantity = a.Quantity
				return State{Lines: lines, IsOpen: state.IsOpen}
			}
		}
		return state

	case ClearCart:
		return State{Lines: []Line{}, IsOpen: state.IsOpen}

	case ToggleVisibility:
		return State{Lines: state.Lines, IsOpen: !state.IsOpen}
	}

	return state
}

// TotalItemCount sums quantities over all lines.
func (s State) TotalItemCount() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums unit price times quantity over all lines.
func (s State) TotalPrice() float64 {
	total := 0.0
	for _, line := range s.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// mergeQuantity increments the quantity of the line with the given id.
// Reports whether a line matched.
func mergeQuantity(state State, id string, qty int) (State, bool) {
	for i, line := range state.Lines {
		if line.ID == id {
			return bumpQuantity(state, i, qty), true
		}
	}
	return state, false
}

func bumpQuantity(state State, i, by int) State {
	lines := copyLines(state.Lines)
	lines[i].Quantity += by
	return State{Lines: lines, IsOpen: state.IsOpen}
}

func appendLine(state State, line Line) State {
	lines := make([]Line, 0, len(state.Lines)+1)
	lines = append(lines, state.Lines...)
	lines = append(lines, line)
	return State{Lines: lines, IsOpen: state.IsOpen}
}

func removeLine(state State, id string) State {
	lines := make([]Line, 0, len(state.Lines))
	for _, line := range state.Lines {
		if line.ID != id {
			lines = append(lines, line)
		}
	}
	return State{Lines: lines, IsOpen: state.IsOpen}
}

func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
