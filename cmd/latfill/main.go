// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command latfill builds a channel by evaluating an expression at every
// offset in parallel, and writes it out as JSON or as a binary snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"reflect"
	"time"

	"github.com/ezrec/lattice/channel"
	"github.com/ezrec/lattice/codec"
	"github.com/ezrec/lattice/expr"
	"github.com/ezrec/lattice/parallel"
)

// config is the parsed command line.
type config struct {
	Length   int
	Source   string
	Type     string
	Workers  int
	Format   string
	Compress bool
	Verbose  bool
}

// generator builds and encodes a channel of one element type.
type generator func(ctx context.Context, cfg config, ex *expr.Expr, w io.Writer) error

var generators = map[string]generator{
	"int8":    generate(asInt[int8]),
	"int16":   generate(asInt[int16]),
	"int32":   generate(asInt[int32]),
	"int64":   generate(asInt[int64]),
	"uint8":   generate(asInt[uint8]),
	"uint16":  generate(asInt[uint16]),
	"uint32":  generate(asInt[uint32]),
	"uint64":  generate(asInt[uint64]),
	"float32": generate(asFloat[float32]),
	"float64": generate(asFloat[float64]),
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// asInt evaluates an int and rejects values T cannot represent.
func asInt[T integer](ex *expr.Expr, offset int) (value T, err error) {
	v, err := ex.EvalInt(offset)
	if err != nil {
		return
	}
	value = T(v)
	if int64(value) != v || (v < 0) != (value < 0) {
		err = &expr.ErrExpression{Source: ex.Source, Err: expr.ErrRange}
	}
	return
}

// asFloat evaluates a number and rejects values that overflow T.
func asFloat[T float](ex *expr.Expr, offset int) (value T, err error) {
	v, err := ex.EvalFloat(offset)
	if err != nil {
		return
	}
	value = T(v)
	if math.IsInf(float64(value), 0) && !math.IsInf(v, 0) {
		err = &expr.ErrExpression{Source: ex.Source, Err: expr.ErrRange}
	}
	return
}

func generate[T codec.Number](convert func(ex *expr.Expr, offset int) (T, error)) generator {
	return func(ctx context.Context, cfg config, ex *expr.Expr, w io.Writer) (err error) {
		started := time.Now()
		ch, err := parallel.Build(ctx, cfg.Length, cfg.Workers, func(offset int) (T, error) {
			return convert(ex, offset)
		})
		if err != nil {
			return
		}
		if cfg.Verbose {
			log.Printf("latfill: %v %v elements in %v", cfg.Length, cfg.Type, time.Since(started))
		}

		return encode(ch, cfg, w)
	}
}

func encode[T codec.Number](ch *channel.Channel[T, channel.Vec[T]], cfg config, w io.Writer) (err error) {
	var data []byte
	switch cfg.Format {
	case "json":
		data, err = json.Marshal(jsonValues(ch.Store().Slice()))
		data = append(data, '\n')
	case "bin":
		data, err = codec.Marshal(ch, codec.Options{Compress: cfg.Compress})
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil {
		return
	}

	if cfg.Verbose {
		log.Printf("latfill: writing %v bytes of %v", len(data), cfg.Format)
	}
	_, err = w.Write(data)
	return
}

// jsonValues keeps byte elements as numbers, where encoding/json would write
// a []uint8 as a base64 string.
func jsonValues[T codec.Number](values []T) any {
	if reflect.TypeFor[T]().Kind() != reflect.Uint8 {
		return values
	}
	wide := make([]uint16, len(values))
	for n, value := range values {
		wide[n] = uint16(value)
	}
	return wide
}

func run(ctx context.Context, cfg config, w io.Writer) (err error) {
	if cfg.Length < 0 {
		return fmt.Errorf("length %v is negative", cfg.Length)
	}
	gen, ok := generators[cfg.Type]
	if !ok {
		return fmt.Errorf("unknown element type %q", cfg.Type)
	}
	if cfg.Compress && cfg.Format != "bin" {
		return fmt.Errorf("-z requires -f bin")
	}

	ex, err := expr.Compile(cfg.Source)
	if err != nil {
		return
	}

	return gen(ctx, cfg, ex, w)
}

func main() {
	var cfg config
	var output string

	flag.IntVar(&cfg.Length, "n", 16, "Number of elements")
	flag.StringVar(&cfg.Source, "e", "i", "Expression evaluated at each offset i")
	flag.StringVar(&cfg.Type, "t", "int32", "Element type")
	flag.IntVar(&cfg.Workers, "j", 0, "Worker goroutines, 0 for GOMAXPROCS")
	flag.StringVar(&cfg.Format, "f", "json", "Output format, json or bin")
	flag.BoolVar(&cfg.Compress, "z", false, "Compress bin output with zstd")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if cfg.Verbose {
		log.Printf("latfill: bounds %v", channel.Mode())
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		w = ouf
	}

	err := run(context.Background(), cfg, w)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
