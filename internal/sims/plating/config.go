package plating

import (
	"strconv"
	"strings"
)

// Rule selects the survival policy applied to live cells.
type Rule string

const (
	// RuleReference kills a live cell only when it has no live neighbors.
	RuleReference Rule = "reference"
	// RuleBands keeps a live cell only with two or three live neighbors.
	RuleBands Rule = "bands"
)

// Neighborhood selects the metric used for the activation probability of
// dead cells.
type Neighborhood string

const (
	// NeighborhoodMoore counts all eight surrounding cells.
	NeighborhoodMoore Neighborhood = "moore"
	// NeighborhoodVonNeumann counts the four axis-adjacent cells.
	NeighborhoodVonNeumann Neighborhood = "vonneumann"
)

// Params holds the transition policy of the plating sim.
type Params struct {
	Rule         Rule
	Neighborhood Neighborhood
}

// Config controls the plating board dimensions and policy.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the reference 120x40 board.
func DefaultConfig() Config {
	return Config{
		Width:  120,
		Height: 40,
		Seed:   1,
		Params: Params{
			Rule:         RuleReference,
			Neighborhood: NeighborhoodMoore,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown or malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= minDimension {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= minDimension {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if rule, ok := ParseRule(v); ok {
			c.Params.Rule = rule
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		if n, ok := ParseNeighborhood(v); ok {
			c.Params.Neighborhood = n
		}
	}
	return c
}

// ParseRule resolves a rule name, case-insensitively.
func ParseRule(s string) (Rule, bool) {
	switch Rule(strings.ToLower(strings.TrimSpace(s))) {
	case RuleReference:
		return RuleReference, true
	case RuleBands:
		return RuleBands, true
	}
	return "", false
}

// ParseNeighborhood resolves a neighborhood name, case-insensitively.
func ParseNeighborhood(s string) (Neighborhood, bool) {
	switch Neighborhood(strings.ToLower(strings.TrimSpace(s))) {
	case NeighborhoodMoore:
		return NeighborhoodMoore, true
	case NeighborhoodVonNeumann, "von-neumann", "orthogonal":
		return NeighborhoodVonNeumann, true
	}
	return "", false
}
