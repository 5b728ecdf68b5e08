package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/storacha/go-bytecodec/codec"
	"github.com/storacha/go-bytecodec/core/result"
	"github.com/storacha/go-bytecodec/core/result/failure"
	fdm "github.com/storacha/go-bytecodec/core/result/failure/datamodel"
)

// parseArray reads a JSON array of numbers. Range checks are left to the
// codec so that out of range values fail as InvalidBytes.
func parseArray(s string) ([]float64, error) {
	var xs []float64
	if err := json.Unmarshal([]byte(s), &xs); err != nil {
		return nil, failure.Errorf(codec.InvalidBytesName, "%q is not a JSON array of numbers", s)
	}
	return xs, nil
}

func printResult[O any](w io.Writer, r result.Result[O, failure.Failure], format func(O) (string, error)) error {
	o, f := result.Unwrap(r)
	if f != nil {
		return f
	}
	s, err := format(o)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func formatInts(b codec.Bytes) (string, error) {
	out, err := json.Marshal(b.Ints())
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func formatHex(b codec.Bytes) (string, error) {
	return b.Hex(), nil
}

func formatUint(n *big.Int) (string, error) {
	return n.String(), nil
}

func identity(s string) (string, error) {
	return s, nil
}

// writeFailure writes f as a single dag-json line.
func writeFailure(w io.Writer, f failure.Failure) error {
	model := failure.Model(f)
	model.Stack = nil
	b, err := fdm.EncodeJSON(model)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
