// Package types holds the value types shared by the binding: the engine's
// enumerations with their registries, response codes, and the error types
// returned to callers.
package types

import (
	"fmt"
	"regexp"
	"sort"
)

// Member is a single named value of an EnumSet.
type Member struct {
	Name  string
	Value int32
}

func (m Member) String() string {
	return m.Name
}

// EnumSet is a closed, immutable set of named int32 constants mirroring one
// of the engine's enumerations. Lookups run in both directions and the
// member list preserves declaration order. A set is built once and never
// mutated afterwards.
type EnumSet struct {
	name    string
	members []Member
	byName  map[string]int32
	byValue map[int32]int // index into members
}

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Define builds an EnumSet from parallel name and value lists. If values is
// nil, members are numbered 0..len(names)-1. Define fails on a length
// mismatch, an invalid member name, or a duplicate name or value, and a
// failed Define leaves no set behind.
func Define(name string, names []string, values []int32) (*EnumSet, error) {
	if values == nil {
		values = make([]int32, len(names))
		for i := range values {
			values[i] = int32(i)
		}
	}
	if len(names) != len(values) {
		return nil, fmt.Errorf("enum %s: %d names but %d values", name, len(names), len(values))
	}
	byName := make(map[string]int32, len(names))
	byValue := make(map[int32]int, len(names))
	members := make([]Member, 0, len(names))
	for i, n := range names {
		if !identifierRE.MatchString(n) {
			return nil, fmt.Errorf("enum %s: invalid member name %q", name, n)
		}
		if _, ok := byName[n]; ok {
			return nil, fmt.Errorf("enum %s: duplicate member name %q", name, n)
		}
		if j, ok := byValue[values[i]]; ok {
			return nil, fmt.Errorf("enum %s: members %q and %q share value %d", name, names[j], n, values[i])
		}
		byName[n] = values[i]
		byValue[values[i]] = i
		members = append(members, Member{Name: n, Value: values[i]})
	}
	return &EnumSet{name: name, members: members, byName: byName, byValue: byValue}, nil
}

// MustDefine is Define for package-level tables; it panics on a malformed
// definition.
func MustDefine(name string, names []string, values []int32) *EnumSet {
	s, err := Define(name, names, values)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the set's name, e.g. "boundkey".
func (s *EnumSet) Name() string {
	return s.name
}

// Len returns the number of members.
func (s *EnumSet) Len() int {
	return len(s.members)
}

// Members returns all members in declaration order. The returned slice is
// shared; callers must not modify it.
func (s *EnumSet) Members() []Member {
	return s.members
}

// ByName resolves a member by its exact name.
func (s *EnumSet) ByName(name string) (Member, error) {
	v, ok := s.byName[name]
	if !ok {
		return Member{}, &EnumError{Set: s.name, Name: name}
	}
	return Member{Name: name, Value: v}, nil
}

// ByValue resolves a member by its numeric value.
func (s *EnumSet) ByValue(v int32) (Member, error) {
	i, ok := s.byValue[v]
	if !ok {
		return Member{}, &EnumError{Set: s.name, Value: v, ByValue: true}
	}
	return s.members[i], nil
}

// Contains reports whether v is a member value of the set.
func (s *EnumSet) Contains(v int32) bool {
	_, ok := s.byValue[v]
	return ok
}

// nameOf is the String() backend for the typed constants: it returns the
// member name, or "setname(v)" for a value outside the set.
func (s *EnumSet) nameOf(v int32) string {
	if i, ok := s.byValue[v]; ok {
		return s.members[i].Name
	}
	return fmt.Sprintf("%s(%d)", s.name, v)
}

// sets indexes every registry defined in this package by set name. It backs
// the dynamic parameter surface, which needs to resolve enumerations from
// configuration text.
var sets = map[string]*EnumSet{}

func register(s *EnumSet) *EnumSet {
	if _, ok := sets[s.name]; ok {
		panic(fmt.Sprintf("enum %s: defined twice", s.name))
	}
	sets[s.name] = s
	return s
}

// Set returns the registry for the named enumeration.
func Set(name string) (*EnumSet, error) {
	s, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("no enum named %q", name)
	}
	return s, nil
}

// Sets returns the names of every registered enumeration, sorted.
func Sets() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
