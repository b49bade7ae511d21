package model

import "fmt"

// Category groups related offsets for output.
type Category int

const (
	CategoryCore Category = iota
	CategoryPlayer
	CategoryCamera
	CategoryWeapon
	CategorySilent
	CategoryCollision
	CategoryAttributes
	CategoryBot
	CategorySkeleton
)

var categoryKeys = map[string]Category{
	"core":       CategoryCore,
	"player":     CategoryPlayer,
	"camera":     CategoryCamera,
	"weapon":     CategoryWeapon,
	"silent":     CategorySilent,
	"collision":  CategoryCollision,
	"attributes": CategoryAttributes,
	"bot":        CategoryBot,
	"skeleton":   CategorySkeleton,
}

// Label is the display label attached to Results.
func (c Category) Label() string {
	switch c {
	case CategoryCore:
		return "Core"
	case CategoryPlayer:
		return "Player"
	case CategoryCamera:
		return "Camera"
	case CategoryWeapon:
		return "Weapon"
	case CategorySilent:
		return "Silent Aim"
	case CategoryCollision:
		return "Collision"
	case CategoryAttributes:
		return "Attributes"
	case CategoryBot:
		return "Bot Detection"
	case CategorySkeleton:
		return "Skeleton/Bones"
	default:
		return "Unknown"
	}
}

func (c Category) String() string { return c.Label() }

// ParseCategory resolves a table key such as "silent" or "bot".
func ParseCategory(key string) (Category, error) {
	c, ok := categoryKeys[key]
	if !ok {
		return 0, fmt.Errorf("unknown category %q", key)
	}
	return c, nil
}

// Section pairs a Category with its Targets in display order.
type Section struct {
	Category Category
	Targets  []Target
}

// GameConfig is the ordered offset table of one variant.
type GameConfig []Section

// TargetCount returns the number of targets that produce a Result.
func (g GameConfig) TargetCount() int {
	n := 0
	for _, s := range g {
		for _, t := range s.Targets {
			if t.Kind() != KindSeparator {
				n++
			}
		}
	}
	return n
}
