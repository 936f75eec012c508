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

package binary

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/iburinoc/binobj/core/data/id"
)

// Entity represents the encodable type information for an object.
// In its compact mode, the entity contains only the information strictly
// required to generate its signature, and not any display names.
//
// An Entity must not be modified or copied once it has been used: its key,
// identifier and signature are computed once and cached.
type Entity struct {
	Package  string    // The package that declared the struct.
	Display  string    // The display name of the class, not set in compact form.
	Identity string    // The true name of the class.
	Version  string    // The version string of the class, if set.
	Fields   FieldList // Descriptions of the fields of the class.

	cache atomic.Pointer[entityCache]
}

type entityCache struct {
	key       string
	id        id.ID
	signature Signature
}

func (e *Entity) cached() *entityCache {
	if c := e.cache.Load(); c != nil {
		return c
	}
	key := MakeKey(e.Package, e.Identity, e.Version)
	c := &entityCache{
		key:       key,
		id:        id.OfString(key),
		signature: Signature(fmt.Sprintf("%z", e)),
	}
	e.cache.CompareAndSwap(nil, c)
	return e.cache.Load()
}

// MakeKey returns the key of an entity with the given package, identity and
// version: package and identity joined by a dot, followed by "@version" if
// the version is not empty.
func MakeKey(pkg, identity, version string) string {
	key := pkg + "." + identity
	if version != "" {
		key += "@" + version
	}
	return key
}

// Key returns the identity of the entity, see MakeKey.
func (e *Entity) Key() string { return e.cached().key }

// ID returns the SHA-1 of the entity's key.
func (e *Entity) ID() id.ID { return e.cached().id }

// SameAs returns true if the entities have the same key.
func (e *Entity) SameAs(o *Entity) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e == o || e.Key() == o.Key()
}

// Name returns the name of the Entity.
func (e *Entity) Name() string {
	if e.Display != "" {
		return e.Display
	}
	return e.Identity
}

func (e *Entity) String() string { return fmt.Sprint(e) }

// Signature is the canonical string form of an entity's key and field layout.
type Signature string

// Signature returns a canonical string representations of an entities signature.
// If two entities have the same Signature, the are assumed to represent the same type
func (e *Entity) Signature() Signature { return e.cached().signature }

// IsPOD checks if the entity is a valid POD type
func (e *Entity) IsPOD() bool {
	for _, field := range e.Fields {
		if !field.Type.IsPOD() {
			return false
		}
	}
	return true
}

// IsSimple checks if the entity is a valid Simple type
func (e *Entity) IsSimple() bool {
	for _, field := range e.Fields {
		if !field.Type.IsSimple() {
			return false
		}
	}
	return true
}

// Format implements the fmt.Formatter interface.
// The 'z' verb prints the signature form, which omits all display names.
func (e *Entity) Format(f fmt.State, c rune) {
	fmt.Fprint(f, e.Package, ".", e.Identity)
	if e.Version != "" {
		fmt.Fprint(f, "@", e.Version)
	}
	if c != 'z' && e.Display != "" {
		fmt.Fprint(f, "(", e.Display, ")")
	}
	fmt.Fprint(f, "{")
	for i, field := range e.Fields {
		if i != 0 {
			fmt.Fprint(f, ",")
		}
		if c != 'z' && field.Declared != "" {
			fmt.Fprint(f, field.Declared, " ")
		}
		field.Type.Format(f, c)
	}
	fmt.Fprint(f, "}")
}

// FieldList is a slice of fields.
type FieldList []Field

// Field represents a name/type pair for a field in an Object.
type Field struct {
	Declared string // The name of the field, not set in compact form.
	Type     Type   // The type stored in the field.
}

// Type represents the common interface to all type objects in the schema.
type Type interface {
	// String returns the true name of the type.
	String() string
	// Format prints the type. The 'z' verb prints the signature form.
	Format(f fmt.State, c rune)
	// EncodeValue writes value, which must have the Go shape of the type.
	// A value of the wrong shape fails e with ErrTypeMismatch.
	EncodeValue(e Encoder, value interface{})
	// DecodeValue reads a value of the type.
	DecodeValue(d Decoder) interface{}
	IsPOD() bool
	IsSimple() bool
}

func trimPackage(n string) string {
	i := strings.LastIndex(n, ".")
	if i < 0 {
		return n
	}
	return n[i+1:]
}

// Name returns the declared name of the field, or the unqualified type name
// for anonymous fields.
func (f Field) Name() string {
	if f.Declared == "" && f.Type != nil {
		return trimPackage(f.Type.String())
	}
	return f.Declared
}

// Find searches the field list of the field with the specified name, returning
// the index of the field if found, otherwise -1.
func (l FieldList) Find(name string) int {
	for i, f := range l {
		if f.Name() == name {
			return i
		}
	}
	return -1
}
