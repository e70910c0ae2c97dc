package verify

import (
	"fmt"

	"github.com/23skdu/bitwise/bitwise"
)

// check returns a description of the disagreement for input n, or "" when
// all variants of its family agree.
type check struct {
	family string
	run    func(n uint32) string
}

var checks = []check{
	{"ones_count", checkOnesCount},
	{"hob", checkHOB},
	{"unset", checkUnset},
	{"invert", checkInvert},
	{"swap", checkSwap},
	{"remove", checkRemove},
	{"rotate", checkRotate},
	{"render", checkRender},
}

// Families lists the variant families checked for every input.
func Families() []string {
	out := make([]string, len(checks))
	for i, c := range checks {
		out[i] = c.family
	}
	return out
}

func checkOnesCount(n uint32) string {
	a, b := bitwise.BinaryOnesCount(n), bitwise.BinaryOnesCountSub(n)
	if a != b {
		return fmt.Sprintf("scan=%d sub=%d", a, b)
	}
	return ""
}

func checkHOB(n uint32) string {
	a, okA := bitwise.HOB(n)
	b, okB := bitwise.HOBThreshold(n)
	c, okC := bitwise.HOBPowerCompare(n)
	if okA != okB || okB != okC || a != b || b != c {
		return fmt.Sprintf("hob=(%d,%t) thr=(%d,%t) comp=(%d,%t)", a, okA, b, okB, c, okC)
	}
	if okA == (n == 0) {
		return fmt.Sprintf("presence %t for %d", okA, n)
	}
	return ""
}

// checkUnset derives the index from n; 32 is included so the range guard is
// exercised too.
func checkUnset(n uint32) string {
	index := n % (bitwise.Width32 + 1)
	a, okA := bitwise.UnsetBit(n, index)
	b, okB := bitwise.UnsetBitXOR(n, index)
	c, okC := bitwise.UnsetBitNot(n, index)
	if okA != okB || okB != okC || a != b || b != c {
		return fmt.Sprintf("index %d: sub=(%d,%t) xor=(%d,%t) not=(%d,%t)", index, a, okA, b, okB, c, okC)
	}
	if okA {
		set, _ := bitwise.SetBit(a, index)
		if back, _ := bitwise.UnsetBit(set, index); back != a {
			return fmt.Sprintf("index %d: unset(set(%d)) = %d", index, a, back)
		}
	}
	return ""
}

func checkInvert(n uint32) string {
	index := n % bitwise.Width32
	once, _ := bitwise.InvertBit(n, index)
	if twice, _ := bitwise.InvertBit(once, index); twice != n {
		return fmt.Sprintf("index %d: double invert = %d", index, twice)
	}
	return ""
}

func checkSwap(n uint32) string {
	i, j := n%bitwise.Width32, (n>>5)%bitwise.Width32
	a, okA := bitwise.SwapBits(n, i, j)
	b, okB := bitwise.SwapBitsXOR(n, i, j)
	if okA != okB || a != b {
		return fmt.Sprintf("swap %d<->%d: mask=(%d,%t) xor=(%d,%t)", i, j, a, okA, b, okB)
	}
	if back, _ := bitwise.SwapBits(a, i, j); back != n {
		return fmt.Sprintf("swap %d<->%d twice = %d", i, j, back)
	}
	return ""
}

func checkRemove(n uint32) string {
	index := n % bitwise.Width32
	got, ok := bitwise.RemoveBit(n, index)
	low := uint32(1)<<index - 1
	want := n&low | (n>>(index+1))<<index
	if !ok || got != want {
		return fmt.Sprintf("index %d: got %d want %d", index, got, want)
	}
	return ""
}

func checkRotate(n uint32) string {
	b, count := uint8(n), n>>8
	if got := bitwise.CircularShr(bitwise.CircularShl(b, count), count); got != b {
		return fmt.Sprintf("shr(shl(%d,%d)) = %d", b, count, got)
	}
	if got := bitwise.CircularShl(bitwise.CircularShr(b, count), count); got != b {
		return fmt.Sprintf("shl(shr(%d,%d)) = %d", b, count, got)
	}
	return ""
}

func checkRender(n uint32) string {
	s := bitwise.BinaryString(n)
	got, err := bitwise.ParseBinaryRepresentation(s)
	if err != nil || got != n {
		return fmt.Sprintf("%q parsed as %d (%v)", s, got, err)
	}
	return ""
}
