package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lattice/channel"
	"github.com/ezrec/lattice/codec"
	"github.com/ezrec/lattice/expr"
)

func TestRun_JSON(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := run(context.Background(), config{Length: 5, Source: "i * i", Type: "int16", Workers: 2, Format: "json"}, &buf)
	assert.NoError(err)
	assert.Equal("[0,1,4,9,16]\n", buf.String())

	buf.Reset()
	err = run(context.Background(), config{Length: 3, Source: "float(i) / 2", Type: "float64", Workers: 3, Format: "json"}, &buf)
	assert.NoError(err)
	assert.Equal("[0,0.5,1]\n", buf.String())
}

func TestRun_Bin(t *testing.T) {
	assert := assert.New(t)

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		err := run(context.Background(), config{Length: 300, Source: "i % 7", Type: "uint32", Format: "bin", Compress: compress}, &buf)
		assert.NoError(err)

		ch, err := codec.Unmarshal[uint32](buf.Bytes())
		assert.NoError(err)
		assert.Equal(300, ch.Len())
		for offset, value := range ch.Values() {
			assert.Equal(uint32(offset%7), value)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := run(context.Background(), config{Length: 0, Source: "i", Type: "int8", Format: "bin"}, &buf)
	assert.NoError(err)

	ch, err := codec.Unmarshal[int8](buf.Bytes())
	assert.NoError(err)
	assert.Equal(channel.Fill[int8](0, 0), ch)
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []config{
		{Length: -1, Source: "i", Type: "int8", Format: "json"},
		{Length: 1, Source: "i", Type: "complex64", Format: "json"},
		{Length: 1, Source: "i", Type: "int8", Format: "yaml"},
		{Length: 1, Source: "i", Type: "int8", Format: "json", Compress: true},
		{Length: 1, Source: "i +", Type: "int8", Format: "json"},
		{Length: 4, Source: "'x'", Type: "int8", Format: "json"},
	}

	for _, cfg := range table {
		var buf bytes.Buffer
		err := run(context.Background(), cfg, &buf)
		assert.Error(err, "%+v", cfg)
		assert.Zero(buf.Len(), "%+v", cfg)
	}
}

func TestRun_Range(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		typ    string
		source string
		output string
	}){
		{"int8", "127 - i * 255", "[127,-128]\n"},
		{"uint8", "255 - i", "[255,254]\n"},
		{"uint16", "65535 * i", "[0,65535]\n"},
		{"int64", "-9223372036854775808 + i", "[-9223372036854775808,-9223372036854775807]\n"},
		{"float32", "3.5 * i", "[0,3.5]\n"},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		err := run(context.Background(), config{Length: 2, Source: entry.source, Type: entry.typ, Workers: 1, Format: "json"}, &buf)
		assert.NoError(err, entry.typ)
		assert.Equal(entry.output, buf.String(), entry.typ)
	}

	var buf bytes.Buffer
	err := run(context.Background(), config{Length: 2, Source: "128 - i", Type: "int8", Format: "json"}, &buf)
	assert.ErrorIs(err, expr.ErrRange)
}

func TestRun_BytesJSON(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := run(context.Background(), config{Length: 4, Source: "i * 80", Type: "uint8", Format: "json"}, &buf)
	assert.NoError(err)
	assert.Equal("[0,80,160,240]\n", buf.String())
}

func TestRun_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	table := []config{
		{Length: 2, Source: "300 + i", Type: "int8", Format: "json"},
		{Length: 1, Source: "-1", Type: "uint16", Format: "json"},
		{Length: 1, Source: "-1", Type: "uint64", Format: "bin"},
		{Length: 1, Source: "1 << 32", Type: "uint32", Format: "bin"},
		{Length: 1, Source: "1e300", Type: "float32", Format: "bin"},
	}

	for _, cfg := range table {
		var buf bytes.Buffer
		err := run(context.Background(), cfg, &buf)
		assert.ErrorIs(err, expr.ErrRange, "%+v", cfg)
		var exprErr *expr.ErrExpression
		assert.ErrorAs(err, &exprErr, "%+v", cfg)
		assert.Zero(buf.Len(), "%+v", cfg)
	}
}
