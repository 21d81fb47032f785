package ascii

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/rangetable"
)

func isSpaceRef(c byte) bool {
	return strings.IndexByte(" \n\t\r", c) >= 0
}

func makeBytes(n int, rnd *rand.Rand) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rnd.Uint32())
	}
	return data
}

var predicates = []struct {
	name string
	fn   func(byte) bool
}{
	{"table", IsSpaceTable},
	{"branch", IsSpaceBranch},
	{"switch", IsSpaceSwitch},
}

func TestPredicatesAllBytes(t *testing.T) {
	for _, p := range predicates {
		for c := 0; c < 256; c++ {
			if got, want := p.fn(byte(c)), isSpaceRef(byte(c)); got != want {
				t.Errorf("%s(%#02x) = %v; want %v", p.name, c, got, want)
			}
		}
	}
}

func TestSpaceTableMatchesBranch(t *testing.T) {
	for c := 0; c < 256; c++ {
		assert.Equal(t, IsSpaceBranch(byte(c)), spaceTable[c], "byte %#02x", c)
	}
}

func TestPlatformMatchesWhiteSpaceTable(t *testing.T) {
	var want [256]bool
	rangetable.Visit(unicode.White_Space, func(r rune) {
		if r < 256 {
			want[r] = true
		}
	})

	var extra []byte
	for c := 0; c < 256; c++ {
		got := IsSpacePlatform(byte(c))
		require.Equal(t, want[c], got, "byte %#02x", c)
		if got && !IsSpaceBranch(byte(c)) {
			extra = append(extra, byte(c))
		}
	}
	assert.Equal(t, []byte{'\v', '\f', 0x85, 0xa0}, extra)
}

func TestCountsAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	// bytes on which the platform predicate disagrees with the others
	ambiguous := MakeCharSet("\v\f\x85\xa0")

	for _, n := range []int{0, 1, 7, 8, 9, 31, 32, 33, 63, 64, 65, 1000, 4099} {
		data := makeBytes(n, rnd)
		s := string(data)

		want := CountFunc(data, isSpaceRef)
		assert.Equal(t, want, CountTable(s), "CountTable len=%d", n)
		assert.Equal(t, want, CountBranch(s), "CountBranch len=%d", n)
		assert.Equal(t, want, CountSwitch(s), "CountSwitch len=%d", n)
		assert.Equal(t, want, CountSpaceSWAR(s), "CountSpaceSWAR len=%d", n)
		assert.Equal(t, want, Whitespace.Count(s), "Whitespace.Count len=%d", n)

		assert.Equal(t, want+ambiguous.Count(s), CountPlatform(s), "CountPlatform len=%d", n)
	}
}

func TestCountsAgreeOnJSONLikeText(t *testing.T) {
	const alphabet = "\n\t\r ,[]\"abcdefghijklmnop:{}"
	rnd := rand.New(rand.NewSource(2))

	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		sb.WriteByte(alphabet[rnd.Intn(len(alphabet))])
	}
	s := sb.String()

	want := CountFunc(s, isSpaceRef)
	require.NotZero(t, want)
	for _, count := range []func(string) int{CountTable, CountBranch, CountSwitch, CountPlatform, CountSpaceSWAR[string], Whitespace.Count} {
		assert.Equal(t, want, count(s))
	}
}

func TestCountFunc(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 0},
		{" ", 1},
		{"a b\tc\nd\re", 4},
		{"\v\f", 0},
		{"    ", 4},
		{"\xa0\x85", 0},
	}

	for _, tt := range tests {
		if got := CountFunc(tt.in, IsSpaceTable); got != tt.want {
			t.Errorf("CountFunc(%q) = %d; want %d", tt.in, got, tt.want)
		}
		if got := CountFunc([]byte(tt.in), IsSpaceSwitch); got != tt.want {
			t.Errorf("CountFunc([]byte(%q)) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidString(t *testing.T) {
	assert.True(t, ValidString(""))
	assert.True(t, ValidString("hello \t\r\n world"))
	assert.False(t, ValidString("hello\xa0world"))
	assert.False(t, ValidString("☺"))
}
