package model

import "github.com/google/uuid"

// DefaultGroupSpacing is the vertical gap between stacked group members
const DefaultGroupSpacing = 6

// Group is a container that stacks its members in a vertical column
// starting at Origin. Members are kept in canvas list order.
type Group struct {
	ID      string
	Origin  Position
	Members []string
	Spacing int
}

// NewGroup creates an empty group anchored at origin
func NewGroup(origin Position) *Group {
	return &Group{
		ID:      uuid.NewString(),
		Origin:  origin,
		Members: make([]string, 0),
		Spacing: DefaultGroupSpacing,
	}
}

// AddMember appends an image ID to the group
func (g *Group) AddMember(imageID string) {
	if g.Contains(imageID) {
		return
	}
	g.Members = append(g.Members, imageID)
}

// ReplaceMember swaps oldID for newID keeping its slot in the column
func (g *Group) ReplaceMember(oldID, newID string) bool {
	for i, id := range g.Members {
		if id == oldID {
			g.Members[i] = newID
			return true
		}
	}
	return false
}

// Contains checks whether the image ID is a member
func (g *Group) Contains(imageID string) bool {
	for _, id := range g.Members {
		if id == imageID {
			return true
		}
	}
	return false
}

// Len returns the number of members
func (g *Group) Len() int {
	return len(g.Members)
}

// Translate moves the group origin by dx, dy
func (g *Group) Translate(dx, dy int) {
	g.Origin = g.Origin.Add(dx, dy)
}
