package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"geocalc/internal/geometry"
)

// categoryItem adapts a geometry.Category to list.Item.
type categoryItem struct {
	cat geometry.Category
}

func (i categoryItem) Title() string {
	switch i.cat {
	case geometry.Category2D:
		return "2D shapes"
	case geometry.Category3D:
		return "3D shapes"
	}
	return string(i.cat)
}

func (i categoryItem) Description() string {
	switch i.cat {
	case geometry.Category2D:
		return "area and perimeter"
	case geometry.Category3D:
		return "volume and surface area"
	}
	return ""
}

func (i categoryItem) FilterValue() string { return string(i.cat) }

func categoryItems() []list.Item {
	return []list.Item{
		categoryItem{cat: geometry.Category2D},
		categoryItem{cat: geometry.Category3D},
	}
}

// shapeItem adapts a geometry.Shape to list.Item.
type shapeItem struct {
	shape geometry.Shape
}

func (i shapeItem) Title() string { return i.shape.Title }

func (i shapeItem) Description() string {
	labels := make([]string, len(i.shape.Dimensions))
	for j, d := range i.shape.Dimensions {
		labels[j] = d.Name
	}
	return strings.Join(labels, ", ") + " · " + i.shape.Formula
}

func (i shapeItem) FilterValue() string { return i.shape.Name + " " + i.shape.Title }

func shapeItems(c geometry.Category) []list.Item {
	shapes := geometry.ByCategory(c)
	items := make([]list.Item, len(shapes))
	for j, s := range shapes {
		items[j] = shapeItem{shape: s}
	}
	return items
}
