// Package catalog holds the static event, workshop and pass reference data
// for Tech Fiesta 2025, and the pricing rules that derive a registration's
// amount from its selections.
package catalog

import "strings"

type EventType string

const (
	EventTypeTech    EventType = "tech"
	EventTypeNonTech EventType = "non-tech"
)

// Event is a single fest event. Prices are whole rupees; CITPrice applies to
// discount-eligible registrants and is zero for non-tech events.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Price       int       `json:"price"`
	CITPrice    int       `json:"citPrice,omitempty"`
	MaxTeamSize int       `json:"maxTeamSize,omitempty"`
}

type Workshop struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Price       int      `json:"price"`
	Seats       int      `json:"seats"`
}

// Pass bundles event and workshop access at a fixed price. IncludedTechEvents
// and IncludedWorkshops are the counts covered by the base price; the Allow*
// flags control whether selections beyond those counts are charged per item.
// A pass with AllowExtraTechEvents false grants all-access to tech events.
type Pass struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Price                int    `json:"price"`
	CITPrice             int    `json:"citPrice"`
	IncludedTechEvents   int    `json:"includedTechEvents"`
	AllowExtraTechEvents bool   `json:"allowExtraTechEvents"`
	IncludedWorkshops    int    `json:"includedWorkshops"`
	AllowExtraWorkshops  bool   `json:"allowExtraWorkshops"`
}

// Catalog is an immutable snapshot of the fest's reference data.
type Catalog struct {
	events    []Event
	workshops []Workshop
	passes    []Pass
}

func New(events []Event, workshops []Workshop, passes []Pass) *Catalog {
	return &Catalog{events: events, workshops: workshops, passes: passes}
}

// Default returns the built-in Tech Fiesta 2025 catalog.
func Default() *Catalog {
	return New(events, workshops, passes)
}

func (c *Catalog) Events() []Event {
	return c.events
}

func (c *Catalog) TechEvents() []Event {
	return c.filterEvents(EventTypeTech)
}

func (c *Catalog) NonTechEvents() []Event {
	return c.filterEvents(EventTypeNonTech)
}

func (c *Catalog) filterEvents(t EventType) []Event {
	var out []Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) EventByID(id int) (Event, bool) {
	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func (c *Catalog) Workshops() []Workshop {
	return c.workshops
}

func (c *Catalog) WorkshopByID(id int) (Workshop, bool) {
	for _, w := range c.workshops {
		if w.ID == id {
			return w, true
		}
	}
	return Workshop{}, false
}

func (c *Catalog) WorkshopsByCategory(category string) []Workshop {
	var out []Workshop
	for _, w := range c.workshops {
		if strings.EqualFold(w.Category, category) {
			out = append(out, w)
		}
	}
	return out
}

func (c *Catalog) WorkshopsByLevel(level string) []Workshop {
	var out []Workshop
	for _, w := range c.workshops {
		if strings.EqualFold(w.Level, level) {
			out = append(out, w)
		}
	}
	return out
}

func (c *Catalog) WorkshopCategories() []string {
	return c.distinct(func(w Workshop) string { return w.Category })
}

func (c *Catalog) WorkshopLevels() []string {
	return c.distinct(func(w Workshop) string { return w.Level })
}

func (c *Catalog) distinct(key func(Workshop) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range c.workshops {
		k := key(w)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (c *Catalog) Passes() []Pass {
	return c.passes
}

func (c *Catalog) PassByID(id int) (Pass, bool) {
	for _, p := range c.passes {
		if p.ID == id {
			return p, true
		}
	}
	return Pass{}, false
}

// CITDomain is the institutional email domain eligible for discount pricing.
const CITDomain = "@citchennai.net"

// IsDiscountEligible reports whether email belongs to the discount-eligible
// institutional domain.
func IsDiscountEligible(email string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), CITDomain)
}
