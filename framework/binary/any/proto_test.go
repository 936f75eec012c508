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

package any_test

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/iburinoc/binobj/core/assert"
	"github.com/iburinoc/binobj/core/log"
	"github.com/iburinoc/binobj/framework/binary"
	"github.com/iburinoc/binobj/framework/binary/any"
)

func TestProto(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		box    binary.Object
		msg    proto.Message
		result binary.Object
	}{
		{any.New(true), wrapperspb.Bool(true), any.New(true)},
		{any.New(int8(-5)), wrapperspb.Int32(-5), any.New(int32(-5))},
		{any.New(uint16(5)), wrapperspb.UInt32(5), any.New(uint32(5))},
		{any.New(int64(-1 << 40)), wrapperspb.Int64(-1 << 40), any.New(int64(-1 << 40))},
		{any.New(uint64(1 << 63)), wrapperspb.UInt64(1 << 63), any.New(uint64(1 << 63))},
		{any.New(float32(0.5)), wrapperspb.Float(0.5), any.New(float32(0.5))},
		{any.New(2.5), wrapperspb.Double(2.5), any.New(2.5)},
		{any.New("s"), wrapperspb.String("s"), any.New("s")},
		{any.New([]byte{1}), wrapperspb.Bytes([]byte{1}), any.New([]byte{1})},
	} {
		msg, err := any.ToProto(test.box)
		assert.For(ctx, "to %v", test.box).ThatError(err).Succeeded()
		assert.For(ctx, "message %v", test.box).ThatBoolean(proto.Equal(msg, test.msg)).IsTrue()
		back, err := any.FromProto(msg)
		assert.For(ctx, "from %v", msg).ThatError(err).Succeeded()
		assert.For(ctx, "result %v", msg).That(back).DeepEquals(test.result)
	}
	_, err := any.ToProto(&any.ObjectBox{})
	assert.For(ctx, "object box").ThatError(err).Failed()
	_, err = any.FromProto(structpb.NewNullValue())
	assert.For(ctx, "not a wrapper").ThatError(err).Failed()
}
