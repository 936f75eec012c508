// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry maps schema identities to the classes that encode and
// decode them.
package registry

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/iburinoc/binobj/core/data/id"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/metrics"
)

// Namespace represents a mapping of type identifiers to their Class.
// It is safe for concurrent use. Adds serialize, lookups run in parallel.
type Namespace struct {
	mutex     sync.RWMutex
	fallbacks []*Namespace
	classes   map[string]binary.Class
	byID      map[id.ID]binary.Class
	aliases   map[string]string
}

var (
	// Global is the default global Namespace object.
	Global = NewNamespace()
)

// NewNamespace creates a new namespace layered on top of the specified fallback.
func NewNamespace(fallbacks ...*Namespace) *Namespace {
	return &Namespace{
		fallbacks: fallbacks,
		classes:   map[string]binary.Class{},
		byID:      map[id.ID]binary.Class{},
		aliases:   map[string]string{},
	}
}

// Add a new class to the Namespace.
// Adding the class already registered for its key does nothing. Adding a
// different class for a key in use fails with binary.ErrDuplicateClass.
func (n *Namespace) Add(class binary.Class) error {
	if class == nil {
		return errors.New("Attempt to add nil class to namespace")
	}
	entity := class.Schema()
	if entity == nil {
		return errors.Errorf("Class %T has no schema", class)
	}
	key := entity.Key()
	n.mutex.Lock()
	defer n.mutex.Unlock()
	if existing, found := n.classes[key]; found {
		if existing == class {
			return nil
		}
		metrics.Default.DuplicateClasses.Inc()
		return binary.ErrDuplicateClass{
			Key:      key,
			Existing: string(existing.Schema().Signature()),
			Added:    string(entity.Signature()),
		}
	}
	n.classes[key] = class
	n.byID[entity.ID()] = class
	metrics.Default.ClassesRegistered.Inc()
	return nil
}

// MustAdd adds class to the Namespace, panicking on failure.
// It is intended for registration from init functions.
func (n *Namespace) MustAdd(class binary.Class) {
	if err := n.Add(class); err != nil {
		panic(err)
	}
}

// AddAlias adds a key alias which will be used if the type with key from
// cannot be found.
func (n *Namespace) AddAlias(to, from string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.aliases[from] = to
}

// AddFallbacks appends new Namespaces to the fallback list of this Namespace.
func (n *Namespace) AddFallbacks(fallbacks ...*Namespace) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.fallbacks = append(n.fallbacks, fallbacks...)
}

// Lookup looks up a Class by the given key in the Namespace.
// If there is no match, it fails with binary.ErrUnknownType.
func (n *Namespace) Lookup(key string) (binary.Class, error) {
	if class := n.find(key, 0); class != nil {
		return class, nil
	}
	return nil, binary.ErrUnknownType{Key: key}
}

// LookupID looks up a Class by the identifier of its schema.
// Aliases only apply to keys, so they are not consulted.
func (n *Namespace) LookupID(ident id.ID) (binary.Class, error) {
	if class := n.findID(ident); class != nil {
		return class, nil
	}
	return nil, binary.ErrUnknownType{ID: ident}
}

// Create returns a new default valued instance of the class registered for key.
func (n *Namespace) Create(key string) (binary.Object, error) {
	class, err := n.Lookup(key)
	if err != nil {
		return nil, err
	}
	return class.New(), nil
}

// maxAliasDepth bounds alias chains, which may form a loop.
const maxAliasDepth = 16

func (n *Namespace) find(key string, depth int) binary.Class {
	n.mutex.RLock()
	class, found := n.classes[key]
	fallbacks := n.fallbacks
	alias, aliased := n.aliases[key]
	n.mutex.RUnlock()
	if found {
		return class
	}
	for _, f := range fallbacks {
		if class := f.find(key, depth); class != nil {
			return class
		}
	}
	if aliased && depth < maxAliasDepth {
		return n.find(alias, depth+1)
	}
	return nil
}

func (n *Namespace) findID(ident id.ID) binary.Class {
	n.mutex.RLock()
	class, found := n.byID[ident]
	fallbacks := n.fallbacks
	n.mutex.RUnlock()
	if found {
		return class
	}
	for _, f := range fallbacks {
		if class := f.findID(ident); class != nil {
			return class
		}
	}
	return nil
}

// Count returns the number of entries reachable through this namespace.
// Because it sums the counts of the namespaces it depends on, this may be
// more than the number of unique keys.
func (n *Namespace) Count() int {
	n.mutex.RLock()
	size := len(n.classes)
	fallbacks := n.fallbacks
	n.mutex.RUnlock()
	for _, f := range fallbacks {
		size += f.Count()
	}
	return size
}

// Visit invokes the visitor for every class object reachable through this
// namespace.
// The visitor maybe be called with the same key more than once if it is
// present in multiple namespaces.
func (n *Namespace) Visit(visitor func(binary.Class)) {
	n.VisitDirect(visitor)
	n.mutex.RLock()
	fallbacks := n.fallbacks
	n.mutex.RUnlock()
	for _, f := range fallbacks {
		f.Visit(visitor)
	}
}

// VisitDirect invokes the visitor for every class object directly in this
// namespace, in key order.
// The visitor is called without the namespace lock held, so it may add to it.
func (n *Namespace) VisitDirect(visitor func(binary.Class)) {
	n.mutex.RLock()
	keys := make([]string, 0, len(n.classes))
	for k := range n.classes {
		keys = append(keys, k)
	}
	classes := make([]binary.Class, len(keys))
	sort.Strings(keys)
	for i, k := range keys {
		classes[i] = n.classes[k]
	}
	n.mutex.RUnlock()
	for _, c := range classes {
		visitor(c)
	}
}
