package channel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoding_Channel(t *testing.T) {
	assert := assert.New(t)

	ch := New[int](Vec[int]{1, 2, 3})
	data, err := json.Marshal(ch)
	assert.NoError(err)
	assert.JSONEq(`[1,2,3]`, string(data))

	decoded := &ints{}
	err = json.Unmarshal(data, decoded)
	assert.NoError(err)
	assert.Equal(ch, decoded)
	assert.True(Equal(ch, decoded))
}

func TestEncoding_Empty(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(Fill(0, 0))
	assert.NoError(err)
	assert.JSONEq(`[]`, string(data))

	var decoded ints
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(0, decoded.Len())
}

func TestEncoding_Invalid(t *testing.T) {
	assert := assert.New(t)

	ch := Fill(1, 2)
	err := json.Unmarshal([]byte(`["a"]`), ch)
	assert.Error(err)
	assert.Equal(Fill(1, 2), ch)
}

func TestEncoding_Tuple(t *testing.T) {
	assert := assert.New(t)

	tuple := NewTuple2[int, string](New[int](Vec[int]{1, 2}), New[string](Vec[string]{"a", "b"}))
	data, err := json.Marshal(tuple)
	assert.NoError(err)
	assert.JSONEq(`{"A":[1,2],"B":["a","b"]}`, string(data))

	var decoded pair
	err = json.Unmarshal(data, &decoded)
	assert.NoError(err)
	assert.Equal(tuple, decoded)
	assert.Equal(Values2[int, string]{A: 2, B: "b"}, decoded.Get(1))
}

func TestEquals(t *testing.T) {
	assert := assert.New(t)

	assert.True(Equal(Fill(1, 3), New[int](Vec[int]{1, 1, 1})))
	assert.False(Equal(Fill(1, 3), Fill(1, 4)))
	assert.False(Equal(Fill(1, 3), Fill(2, 3)))

	a := New[int16](window{data: []int16{1, 2}})
	b := New[int16](window{data: []int16{1, 2}})
	assert.True(Equal(a, b))
}

func TestEncoding_ByValue(t *testing.T) {
	assert := assert.New(t)

	type holder struct {
		Density ints
		Labels  *strs
	}

	data, err := json.Marshal(*Fill(7, 3))
	assert.NoError(err)
	assert.JSONEq(`[7,7,7]`, string(data))

	in := holder{Density: *Fill(7, 3), Labels: Fill("x", 2)}
	data, err = json.Marshal(in)
	assert.NoError(err)
	assert.JSONEq(`{"Density":[7,7,7],"Labels":["x","x"]}`, string(data))

	var out holder
	err = json.Unmarshal(data, &out)
	assert.NoError(err)
	assert.Equal(in, out)
}

func TestEqualChannels(t *testing.T) {
	assert := assert.New(t)

	assert.True(EqualChannels[int](Fill(1, 3), New[int](Vec[int]{1, 1, 1})))
	assert.False(EqualChannels[int](Fill(1, 3), Fill(1, 2)))

	a := NewTuple2[int, string](New[int](Vec[int]{1, 2}), New[string](Vec[string]{"a", "b"}))
	b := NewTuple2[int, string](New[int](Vec[int]{1, 2}), New[string](Vec[string]{"a", "b"}))
	assert.True(EqualChannels[Values2[int, string]](a, b))

	b.B.Set(1, "c")
	assert.False(EqualChannels[Values2[int, string]](a, b))

	data, err := json.Marshal(a)
	assert.NoError(err)
	var decoded pair
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.True(EqualChannels[Values2[int, string]](a, decoded))
}
