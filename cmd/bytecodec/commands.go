package main

import (
	"fmt"
	"math/big"

	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-bytecodec/codec"
	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/storacha/go-bytecodec/core/hash/cache"
	"github.com/storacha/go-bytecodec/core/hash/hashers"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

type FromUintCmd struct {
	Number string `arg:"" help:"Unsigned decimal integer."`
	Size   int    `help:"Zero pad the result to this many bytes."`
}

func (c *FromUintCmd) Run(ctx *Context) error {
	n, ok := new(big.Int).SetString(c.Number, 10)
	if !ok {
		return failure.Errorf(codec.InvalidUintName, "%q is not a decimal integer", c.Number)
	}
	if c.Size != 0 {
		return printResult(ctx.Out, codec.Uint2FixedLengthBytes(n, c.Size), formatInts)
	}
	return printResult(ctx.Out, codec.Uint2Bytes(n), formatInts)
}

type ToUintCmd struct {
	Bytes string `arg:"" help:"JSON byte array, least significant byte first."`
}

func (c *ToUintCmd) Run(ctx *Context) error {
	xs, err := parseArray(c.Bytes)
	if err != nil {
		return err
	}
	return printResult(ctx.Out, codec.Bytes2Uint(xs), formatUint)
}

type FromStrCmd struct {
	Text string `arg:"" help:"Text whose characters are all below U+0100."`
}

func (c *FromStrCmd) Run(ctx *Context) error {
	return printResult(ctx.Out, codec.Str2Bytes(c.Text), formatInts)
}

type ToStrCmd struct {
	Bytes string `arg:"" help:"JSON byte array."`
}

func (c *ToStrCmd) Run(ctx *Context) error {
	xs, err := parseArray(c.Bytes)
	if err != nil {
		return err
	}
	return printResult(ctx.Out, codec.Bytes2Str(xs), identity)
}

type FromHexCmd struct {
	Hex string `arg:"" help:"Hex string, case-insensitive."`
}

func (c *FromHexCmd) Run(ctx *Context) error {
	return printResult(ctx.Out, codec.HexStr2Bytes(c.Hex), formatInts)
}

type ToHexCmd struct {
	Bytes string `arg:"" help:"JSON byte array."`
}

func (c *ToHexCmd) Run(ctx *Context) error {
	xs, err := parseArray(c.Bytes)
	if err != nil {
		return err
	}
	return printResult(ctx.Out, codec.Bytes2HexStr(xs), identity)
}

type ReverseCmd struct {
	Bytes string `arg:"" help:"JSON byte array."`
}

func (c *ReverseCmd) Run(ctx *Context) error {
	xs, err := parseArray(c.Bytes)
	if err != nil {
		return err
	}
	return printResult(ctx.Out, codec.ReverseBytes(xs), formatInts)
}

type HashCmd struct {
	Inputs []string `arg:"" help:"Strings to hash, or JSON byte arrays with --bytes."`
	Bytes  bool     `help:"Read inputs as JSON byte arrays."`
	Alg    string   `help:"Hash function, see the algs command." default:"sha2-256" env:"BYTECODEC_HASH"`
	Format string   `help:"Output format: hex, multihash, cid, or a multibase name such as base32." default:"hex"`
}

func (c *HashCmd) Run(ctx *Context) error {
	h, err := hashers.Lookup(c.Alg)
	if err != nil {
		return err
	}
	format, err := digestFormatter(c.Format, h.Code())
	if err != nil {
		return err
	}

	// repeated inputs are hashed once
	cached, err := cache.New(h, len(c.Inputs))
	if err != nil {
		return err
	}
	ctx.Logger.Debug("hashing", "alg", c.Alg, "inputs", len(c.Inputs), "format", c.Format)

	for _, in := range c.Inputs {
		if c.Bytes {
			xs, err := parseArray(in)
			if err != nil {
				return err
			}
			err = printResult(ctx.Out, codec.HashIntoBytesFromBytes(cached, xs), format)
			if err != nil {
				return err
			}
			continue
		}
		if err := printResult(ctx.Out, codec.HashIntoBytesFromString(cached, in), format); err != nil {
			return err
		}
	}
	ctx.Logger.Debug("hashed", "distinct", cached.Len())
	return nil
}

// digestFormatter picks how raw digests are rendered.
func digestFormatter(name string, code uint64) (func(codec.Bytes) (string, error), error) {
	switch name {
	case "hex":
		return formatHex, nil
	case "multihash":
		return func(b codec.Bytes) (string, error) {
			d, err := hash.FromRaw(code, b)
			if err != nil {
				return "", err
			}
			return codec.Bytes(d.Bytes()).Hex(), nil
		}, nil
	case "cid":
		return func(b codec.Bytes) (string, error) {
			d, err := hash.FromRaw(code, b)
			if err != nil {
				return "", err
			}
			return hash.Link(d).String(), nil
		}, nil
	}
	enc, ok := multibase.Encodings[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return func(b codec.Bytes) (string, error) {
		return b.Multibase(enc)
	}, nil
}

type AlgsCmd struct{}

func (c *AlgsCmd) Run(ctx *Context) error {
	for _, name := range hashers.Names() {
		if _, err := fmt.Fprintln(ctx.Out, name); err != nil {
			return err
		}
	}
	return nil
}
