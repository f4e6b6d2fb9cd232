package cart

import (
	"strconv"
	"strings"
)

// Line identity is content-addressed over (catalog id, notes, customizations).
// Price and display name are deliberately not part of the key: a later catalog
// price change must still merge into the existing line.
//
// Segments are joined with '|' and customization entries with ',' so that the
// list boundary survives the encoding; a plain hyphen join could not tell
// ["a-b"] apart from ["a","b"].

// normalizeFragment lower-cases free text and collapses whitespace runs to a
// single hyphen. Returns "" for blank input.
func normalizeFragment(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	return strings.Join(fields, "-")
}

// normalizeCustomizations encodes the ordered customization list as a single
// fragment. Empty entries are dropped; an empty list yields "".
func normalizeCustomizations(customizations []string) string {
	parts := make([]string, 0, len(customizations))
	for _, c := range customizations {
		if frag := normalizeFragment(c); frag != "" {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, ",")
}

// composeLineID builds the derived id from the type tag, the catalog id
// segments, and the normalized notes/customizations. Empty fragments
// contribute nothing.
func composeLineID(tag string, ids []int, notes string, customizations []string) string {
	segments := []string{tag}
	for _, id := range ids {
		segments = append(segments, strconv.Itoa(id))
	}
	if frag := normalizeFragment(notes); frag != "" {
		segments = append(segments, frag)
	}
	if frag := normalizeCustomizations(customizations); frag != "" {
		segments = append(segments, frag)
	}
	return strings.Join(segments, "|")
}

func productLineID(productID int, notes string, customizations []string) string {
	return composeLineID("product", []int{productID}, notes, customizations)
}

func variantLineID(productID, variantID int, notes string, customizations []string) string {
	return composeLineID("product_variant", []int{productID, variantID}, notes, customizations)
}

func comboLineID(comboID int, notes string, customizations []string) string {
	return composeLineID("food_combo", []int{comboID}, notes, customizations)
}
