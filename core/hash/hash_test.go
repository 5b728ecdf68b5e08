package hash_test

import (
	stdsha256 "crypto/sha256"
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/storacha/go-bytecodec/core/hash"
	"github.com/storacha/go-bytecodec/core/hash/blake2b"
	"github.com/storacha/go-bytecodec/core/hash/blake3"
	"github.com/storacha/go-bytecodec/core/hash/sha256"
	"github.com/storacha/go-bytecodec/core/hash/sha3"
	"github.com/storacha/go-bytecodec/core/hash/sha512"
	"github.com/storacha/go-bytecodec/testing/helpers"
	"github.com/stretchr/testify/require"
	zblake3 "github.com/zeebo/blake3"
	xblake2b "golang.org/x/crypto/blake2b"
	xsha3 "golang.org/x/crypto/sha3"
)

func TestHashers(t *testing.T) {
	input := []byte("abc")

	testCases := []struct {
		name   string
		hasher hash.Hasher
		code   multicodec.Code
		want   []byte
	}{
		{"sha2-256", sha256.Hasher, multicodec.Sha2_256, sum256(input)},
		{"sha2-384", sha512.Hasher384, multicodec.Sha2_384, sum384(input)},
		{"sha2-512", sha512.Hasher512, multicodec.Sha2_512, sum512(input)},
		{"sha3-256", sha3.Hasher256, multicodec.Sha3_256, sha3Sum256(input)},
		{"sha3-384", sha3.Hasher384, multicodec.Sha3_384, sha3Sum384(input)},
		{"sha3-512", sha3.Hasher512, multicodec.Sha3_512, sha3Sum512(input)},
		{"blake2b-256", blake2b.Hasher, multicodec.Blake2b256, blake2bSum256(input)},
		{"blake3", blake3.Hasher, multicodec.Blake3, blake3Sum256(input)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, uint64(tc.code), tc.hasher.Code())

			d, err := tc.hasher.Sum(input)
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Digest())
			require.Equal(t, tc.hasher.Size(), d.Size())
			require.Len(t, d.Digest(), int(tc.hasher.Size()))
			require.Equal(t, uint64(tc.code), d.Code())

			dmh, err := multihash.Decode(d.Bytes())
			require.NoError(t, err)
			require.Equal(t, uint64(tc.code), dmh.Code)
			require.Equal(t, tc.want, dmh.Digest)
		})
	}
}

func TestSHA256KnownVector(t *testing.T) {
	d, err := sha256.Hasher.Sum([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(d.Digest()))
}

func TestSumIsDeterministic(t *testing.T) {
	data := helpers.RandomBytes(1024)
	d1 := helpers.Must(sha256.Hasher.Sum(data))
	d2 := helpers.Must(sha256.Hasher.Sum(data))
	require.Equal(t, d1.Bytes(), d2.Bytes())
}

func TestDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		d := helpers.Must(sha256.Hasher.Sum([]byte("abc")))
		decoded, err := hash.Decode(d.Bytes())
		require.NoError(t, err)
		require.Equal(t, d.Code(), decoded.Code())
		require.Equal(t, d.Size(), decoded.Size())
		require.Equal(t, d.Digest(), decoded.Digest())
		require.Equal(t, d.Bytes(), decoded.Bytes())
	})

	t.Run("truncated", func(t *testing.T) {
		d := helpers.Must(sha256.Hasher.Sum([]byte("abc")))
		_, err := hash.Decode(d.Bytes()[:10])
		require.Error(t, err)
	})
}

func TestLink(t *testing.T) {
	d := helpers.Must(sha256.Hasher.Sum([]byte("abc")))
	c := hash.Link(d)
	require.Equal(t, uint64(1), c.Version())
	require.Equal(t, uint64(multicodec.Raw), c.Type())
	require.Equal(t, d.Bytes(), []byte(c.Hash()))
}

func sum256(b []byte) []byte {
	s := stdsha256.Sum256(b)
	return s[:]
}

func sum384(b []byte) []byte {
	s := stdsha512.Sum384(b)
	return s[:]
}

func sum512(b []byte) []byte {
	s := stdsha512.Sum512(b)
	return s[:]
}

func sha3Sum256(b []byte) []byte {
	s := xsha3.Sum256(b)
	return s[:]
}

func sha3Sum384(b []byte) []byte {
	s := xsha3.Sum384(b)
	return s[:]
}

func sha3Sum512(b []byte) []byte {
	s := xsha3.Sum512(b)
	return s[:]
}

func blake2bSum256(b []byte) []byte {
	s := xblake2b.Sum256(b)
	return s[:]
}

func blake3Sum256(b []byte) []byte {
	s := zblake3.Sum256(b)
	return s[:]
}

func TestFromRaw(t *testing.T) {
	d := helpers.Must(sha256.Hasher.Sum([]byte("abc")))
	rebuilt, err := hash.FromRaw(sha256.Code, d.Digest())
	require.NoError(t, err)
	require.Equal(t, d.Bytes(), rebuilt.Bytes())
	require.Equal(t, d.Size(), rebuilt.Size())
}
