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

package any

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/iburinoc/binobj/framework/binary"
)

// ToProto converts a scalar box to the matching protobuf wrapper message.
// Integers narrower than 32 bits widen to the 32 bit wrappers, and an id
// becomes a BytesValue.
func ToProto(obj binary.Object) (proto.Message, error) {
	switch b := obj.(type) {
	case *Bool:
		return wrapperspb.Bool(b.Value), nil
	case *Int8:
		return wrapperspb.Int32(int32(b.Value)), nil
	case *Int16:
		return wrapperspb.Int32(int32(b.Value)), nil
	case *Int32:
		return wrapperspb.Int32(b.Value), nil
	case *Uint8:
		return wrapperspb.UInt32(uint32(b.Value)), nil
	case *Uint16:
		return wrapperspb.UInt32(uint32(b.Value)), nil
	case *Uint32:
		return wrapperspb.UInt32(b.Value), nil
	case *Int64:
		return wrapperspb.Int64(b.Value), nil
	case *Uint64:
		return wrapperspb.UInt64(b.Value), nil
	case *Float32:
		return wrapperspb.Float(b.Value), nil
	case *Float64:
		return wrapperspb.Double(b.Value), nil
	case *String:
		return wrapperspb.String(b.Value), nil
	case *Bytes:
		return wrapperspb.Bytes(b.Value), nil
	case *ID:
		return wrapperspb.Bytes(b.Value[:]), nil
	default:
		return nil, errors.Errorf("%T has no protobuf wrapper", obj)
	}
}

// FromProto converts a protobuf wrapper message to the box of the same width.
func FromProto(msg proto.Message) (binary.Object, error) {
	switch m := msg.(type) {
	case *wrapperspb.BoolValue:
		return New(m.GetValue()), nil
	case *wrapperspb.Int32Value:
		return New(m.GetValue()), nil
	case *wrapperspb.UInt32Value:
		return New(m.GetValue()), nil
	case *wrapperspb.Int64Value:
		return New(m.GetValue()), nil
	case *wrapperspb.UInt64Value:
		return New(m.GetValue()), nil
	case *wrapperspb.FloatValue:
		return New(m.GetValue()), nil
	case *wrapperspb.DoubleValue:
		return New(m.GetValue()), nil
	case *wrapperspb.StringValue:
		return New(m.GetValue()), nil
	case *wrapperspb.BytesValue:
		return New(m.GetValue()), nil
	default:
		return nil, errors.Errorf("%T is not a protobuf wrapper", msg)
	}
}
