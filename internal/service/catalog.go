package service

import (
	"sort"
	"strings"
	"sync"
)

// DefaultClasses is the catalog used when no custom list is configured.
var DefaultClasses = []string{
	"Swordsman",
	"Mage",
	"Archer",
	"Acolyte",
	"Merchant",
	"Thief",
}

// DefaultClassColors maps canonical class names to the roster board's
// display colors.
var DefaultClassColors = map[string]string{
	"Swordsman": "#e74c3c",
	"Mage":      "#9b59b6",
	"Archer":    "#27ae60",
	"Acolyte":   "#f1c40f",
	"Merchant":  "#e67e22",
	"Thief":     "#34495e",
}

// fallbackClassColor is used for classes without a configured color.
const fallbackClassColor = "#7f8c8d"

// ClassCatalog holds the set of valid member classes. The catalog can be
// replaced at runtime; registered listeners are told about the new list
// so caches and streams stay current.
type ClassCatalog struct {
	mu        sync.RWMutex
	classes   []string
	index     map[string]struct{}
	listeners []func([]string)
}

// NewClassCatalog creates a catalog from the given classes, falling back
// to DefaultClasses when the list is empty. Duplicates are dropped,
// order is preserved.
func NewClassCatalog(classes []string) *ClassCatalog {
	c := &ClassCatalog{}
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	c.set(classes)
	return c
}

// Classes returns the catalog in display order
func (c *ClassCatalog) Classes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.classes))
	copy(out, c.classes)
	return out
}

// IsValid reports whether the class is in the catalog. Matching is
// case-insensitive; stored casing is canonical.
func (c *ClassCatalog) IsValid(class string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.index[strings.ToLower(class)]
	return ok
}

// Canonical returns the catalog's casing for a class, or the input
// unchanged when the class is unknown.
func (c *ClassCatalog) Canonical(class string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lower := strings.ToLower(class)
	for _, known := range c.classes {
		if strings.ToLower(known) == lower {
			return known
		}
	}
	return class
}

// Replace swaps the catalog contents and notifies listeners
func (c *ClassCatalog) Replace(classes []string) {
	c.mu.Lock()
	c.set(classes)
	listeners := make([]func([]string), len(c.listeners))
	copy(listeners, c.listeners)
	snapshot := make([]string, len(c.classes))
	copy(snapshot, c.classes)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// OnChange registers a listener called with the new class list whenever
// the catalog is replaced. Listeners run on the caller of Replace.
func (c *ClassCatalog) OnChange(fn func([]string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Color returns the display color for a class. Unknown classes and
// classes without a configured color get the neutral fallback.
func (c *ClassCatalog) Color(class string) string {
	if color, ok := DefaultClassColors[c.Canonical(class)]; ok {
		return color
	}
	return fallbackClassColor
}

// Sorted returns the catalog in alphabetical order, for displays that
// want it stable regardless of configuration order.
func (c *ClassCatalog) Sorted() []string {
	out := c.Classes()
	sort.Strings(out)
	return out
}

func (c *ClassCatalog) set(classes []string) {
	c.classes = c.classes[:0]
	c.index = make(map[string]struct{}, len(classes))
	for _, class := range classes {
		key := strings.ToLower(strings.TrimSpace(class))
		if key == "" {
			continue
		}
		if _, seen := c.index[key]; seen {
			continue
		}
		c.index[key] = struct{}{}
		c.classes = append(c.classes, strings.TrimSpace(class))
	}
}
