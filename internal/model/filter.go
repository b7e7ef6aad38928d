package model

import "strings"

// FilterElements applies filters to a slice of elements, returning only
// matching elements. It filters by type tags and bounding box. Elements that
// do not match but have matching descendants are replaced by those
// descendants.
func FilterElements(elements []Element, types []string, bbox *[4]int) []Element {
	if len(types) == 0 && bbox == nil {
		return elements
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range ExpandTypes(types) {
		typeSet[t] = true
	}

	var result []Element
	for _, el := range elements {
		var filteredChildren []Element
		if len(el.Children) > 0 {
			filteredChildren = FilterElements(el.Children, types, bbox)
		}

		typeMatch := len(typeSet) == 0 || typeSet[el.Type]
		bboxMatch := bbox == nil || boundsIntersect(el.Bounds, *bbox)

		if typeMatch && bboxMatch {
			filtered := el
			filtered.Children = filteredChildren
			result = append(result, filtered)
		} else if len(filteredChildren) > 0 {
			result = append(result, filteredChildren...)
		}
	}
	return result
}

// FilterByText keeps elements whose name or text contains the given text
// (case-insensitive), preserving the ancestry of every match.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	var result []Element
	for _, el := range elements {
		matched := strings.Contains(strings.ToLower(el.Name), textLower) ||
			strings.Contains(strings.ToLower(el.Text), textLower)
		childMatches := FilterByText(el.Children, text)

		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

// isEmptyContainer returns true for anonymous panel/other nodes that carry no
// name or text.
func isEmptyContainer(el Element) bool {
	return (el.Type == TypePanel || el.Type == TypeOther) && el.Name == "" && el.Text == ""
}

// PruneEmptyContainers removes anonymous panel/other nodes from a tree,
// promoting their children to the parent.
func PruneEmptyContainers(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		prunedChildren := PruneEmptyContainers(el.Children)

		if isEmptyContainer(el) {
			result = append(result, prunedChildren...)
		} else {
			pruned := el
			pruned.Children = prunedChildren
			result = append(result, pruned)
		}
	}
	return result
}

// boundsIntersect checks if two [x, y, width, height] rectangles overlap.
func boundsIntersect(a, b [4]int) bool {
	ax1, ay1, ax2, ay2 := a[0], a[1], a[0]+a[2], a[1]+a[3]
	bx1, by1, bx2, by2 := b[0], b[1], b[0]+b[2], b[1]+b[3]
	return ax1 < bx2 && ax2 > bx1 && ay1 < by2 && ay2 > by1
}
