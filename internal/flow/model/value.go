/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package model defines the data structures of a form flow.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	// KindUndefined is the zero kind. It marks a value that was not sent at all.
	KindUndefined ValueKind = iota
	// KindNull is an explicit null.
	KindNull
	// KindString is a string value.
	KindString
	// KindNumber is a numeric value, held as float64.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindMap is a mapping of string keys to values.
	KindMap
)

// ErrUnsupportedValue is returned when decoding a value that is not a primitive or a mapping.
var ErrUnsupportedValue = errors.New("unsupported value type")

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	default:
		return "undefined"
	}
}

// Value is a dynamically typed step value: string, number, boolean, null or a nested mapping.
// Values are immutable once constructed.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	m    map[string]Value
}

// Null returns an explicit null value.
func Null() Value {
	return Value{kind: KindNull}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Map returns a mapping value holding a copy of the given entries.
func Map(entries map[string]Value) Value {
	m := make(map[string]Value, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the kind of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsDefined reports whether the value was supplied. An explicit null is defined.
func (v Value) IsDefined() bool {
	return v.kind != KindUndefined
}

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string held by the value.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the number held by the value.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean held by the value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsMap returns a copy of the entries held by a mapping value.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	m := make(map[string]Value, len(v.m))
	for k, e := range v.m {
		m[k] = e
	}
	return m, true
}

// Interface converts the value to its plain Go representation.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindMap:
		m := make(map[string]interface{}, len(v.m))
		for k, e := range v.m {
			m[k] = e.Interface()
		}
		return m
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindMap:
		return EqualMaps(v.m, other.m)
	default:
		return true
	}
}

// EqualMaps reports whether two value mappings hold equal entries.
func EqualMaps(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

// FromInterface converts a decoded JSON or plain Go value into a Value.
// Arrays and other composite types are rejected.
func FromInterface(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Number(n), nil
	case map[string]Value:
		return Map(t), nil
	case map[string]interface{}:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := FromInterface(e)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			m[k] = ev
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// MarshalJSON encodes the value. An undefined value encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON primitive or object into the value.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	parsed, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalBSONValue encodes the value for the document store. Mapping keys are written in sorted order.
func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.kind {
	case KindString:
		return bson.MarshalValue(v.str)
	case KindNumber:
		return bson.MarshalValue(v.num)
	case KindBool:
		return bson.MarshalValue(v.b)
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		doc := make(bson.D, 0, len(keys))
		for _, k := range keys {
			doc = append(doc, bson.E{Key: k, Value: v.m[k]})
		}
		return bson.MarshalValue(doc)
	default:
		return bson.TypeNull, nil, nil
	}
}

// UnmarshalBSONValue decodes a value read from the document store.
func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	parsed, err := fromRawValue(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func fromRawValue(rv bson.RawValue) (Value, error) {
	switch rv.Type {
	case bson.TypeNull, bson.TypeUndefined:
		return Null(), nil
	case bson.TypeString:
		return String(rv.StringValue()), nil
	case bson.TypeDouble:
		return Number(rv.Double()), nil
	case bson.TypeInt32:
		return Number(float64(rv.Int32())), nil
	case bson.TypeInt64:
		return Number(float64(rv.Int64())), nil
	case bson.TypeBoolean:
		return Bool(rv.Boolean()), nil
	case bson.TypeEmbeddedDocument:
		elements, err := rv.Document().Elements()
		if err != nil {
			return Value{}, err
		}
		m := make(map[string]Value, len(elements))
		for _, element := range elements {
			ev, err := fromRawValue(element.Value())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", element.Key(), err)
			}
			m[element.Key()] = ev
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, fmt.Errorf("%w: bson %s", ErrUnsupportedValue, rv.Type)
	}
}

// CloneValues returns a shallow copy of a value mapping.
func CloneValues(m map[string]Value) map[string]Value {
	if m == nil {
		return nil
	}
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
