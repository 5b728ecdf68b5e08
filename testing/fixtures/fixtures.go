package fixtures

// UintVector pairs an unsigned integer (decimal) with its minimal
// little-endian byte encoding.
type UintVector struct {
	Decimal string
	Bytes   []int
}

var UintVectors = []UintVector{
	{"0", []int{0}},
	{"1", []int{1}},
	{"255", []int{255}},
	{"256", []int{0, 1}},
	{"300", []int{44, 1}},
	{"65535", []int{255, 255}},
	{"65536", []int{0, 0, 1}},
	{"9007199254740991", []int{255, 255, 255, 255, 255, 255, 31}},
	{"18446744073709551616", []int{0, 0, 0, 0, 0, 0, 0, 0, 1}},
}

// HexVector pairs a hex string with its decoded bytes and canonical
// (lowercase, even length) rendering.
type HexVector struct {
	Hex       string
	Bytes     []int
	Canonical string
}

var HexVectors = []HexVector{
	{"", []int{}, ""},
	{"0", []int{0}, "00"},
	{"abc", []int{10, 188}, "0abc"},
	{"0abc", []int{10, 188}, "0abc"},
	{"0ABC", []int{10, 188}, "0abc"},
	{"DeadBeef", []int{222, 173, 190, 239}, "deadbeef"},
	{"ff00", []int{255, 0}, "ff00"},
}

// InvalidHex holds strings rejected by the hex decoder.
var InvalidHex = []string{"xyz", "0x12", "12 34", "g", "ab-cd", "éé"}

// SHA256ABC is the SHA-256 digest of "abc".
const SHA256ABC = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

// SHA256Empty is the SHA-256 digest of the empty input.
const SHA256Empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
