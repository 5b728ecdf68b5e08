package printer

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ipld/go-ipld-prime/printer"
	"github.com/multiformats/go-multicodec"
	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/storacha/go-bytecodec/core/result/failure"
	"github.com/stretchr/testify/require"
)

func withIndent(t *testing.T, level int) func(format string, args ...any) {
	indent := strings.Repeat("  ", level)
	return func(format string, args ...any) {
		t.Logf(indent+format, args...)
	}
}

func PrintDigest(t *testing.T, d hash.Digest, level int) {
	t.Helper()
	log := withIndent(t, level)

	log("%s\n", hash.Link(d))
	log("  Code: %s (0x%x)\n", multicodec.Code(d.Code()), d.Code())
	log("  Size: %d\n", d.Size())
	log("  Digest: %s\n", hex.EncodeToString(d.Digest()))
	log("  Multihash: %s\n", hex.EncodeToString(d.Bytes()))
}

func PrintFailure(t *testing.T, f failure.Failure, level int) {
	t.Helper()
	log := withIndent(t, level)

	log("%s: %s\n", f.Name(), f.Error())
	if c, ok := f.(failure.IPLDConvertable); ok {
		nd, err := c.ToIPLD()
		require.NoError(t, err)
		log("  %s\n", printer.Sprint(nd))
	}
}
