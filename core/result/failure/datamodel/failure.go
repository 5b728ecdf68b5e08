package datamodel

import (
	// to use go:embed
	_ "embed"
	"fmt"

	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/node/bindnode"
	"github.com/ipld/go-ipld-prime/schema"
)

//go:embed failure.ipldsch
var failureSchema []byte

// FailureModel is the serializable form of a failure.
type FailureModel struct {
	Name    *string
	Message string
	Stack   *string
}

func (f FailureModel) Error() string {
	return f.Message
}

func (f *FailureModel) ToIPLD() (ipld.Node, error) {
	return bindnode.Wrap(f, typ).Representation(), nil
}

var typ schema.Type

func init() {
	ts, err := ipld.LoadSchemaBytes(failureSchema)
	if err != nil {
		panic(fmt.Errorf("loading failure schema: %w", err))
	}
	typ = ts.TypeByName("Failure")
}

// EncodeJSON encodes the model as dag-json.
func EncodeJSON(f *FailureModel) ([]byte, error) {
	return ipld.Marshal(dagjson.Encode, f, typ)
}

// DecodeJSON decodes a dag-json encoded failure.
func DecodeJSON(b []byte) (FailureModel, error) {
	f := FailureModel{}
	_, err := ipld.Unmarshal(b, dagjson.Decode, &f, typ)
	return f, err
}
