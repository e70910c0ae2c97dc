package bitwise_test

import (
	"fmt"
	"os"

	"github.com/23skdu/bitwise/bitwise"
)

func ExamplePowerOfTwo() {
	fmt.Println(bitwise.PowerOfTwo(3))
	fmt.Println(bitwise.PowerOfTwo(45))
	// Output:
	// 8 <nil>
	// 0 bitwise: overflow
}

func ExampleWriteBinaryRepresentation() {
	_ = bitwise.WriteBinaryRepresentation(os.Stdout, 0b101)
	fmt.Println()
	// Output:
	// 101
}

func ExampleHOB() {
	fmt.Println(bitwise.HOB(0b100))
	fmt.Println(bitwise.HOB(0))
	// Output:
	// 2 true
	// 0 false
}

func ExampleSetBit() {
	fmt.Println(bitwise.SetBit(0b101, 1))
	fmt.Println(bitwise.SetBit(0b100, 45))
	// Output:
	// 7 true
	// 0 false
}

func ExampleCircularShl() {
	fmt.Printf("%08b\n", bitwise.CircularShl(0b10000011, 2))
	fmt.Printf("%08b\n", bitwise.CircularShr(0b10000011, 2))
	// Output:
	// 00001110
	// 11100000
}

func ExampleConsecutiveOnesCount() {
	fmt.Println(bitwise.ConsecutiveOnesCount(0b111011011, 2))
	// Output:
	// 4 true
}

func ExampleSwapBits() {
	n, _ := bitwise.SwapBits(0b100011, 1, 4)
	fmt.Printf("%b\n", n)
	// Output:
	// 110001
}

func ExampleRemoveBit() {
	n, _ := bitwise.RemoveBit(0b100011, 1)
	fmt.Printf("%b\n", n)
	// Output:
	// 10001
}

func ExampleFindUnique() {
	fmt.Println(bitwise.FindUnique([]uint32{45, 32, 777, 10, 45, 10, 32}))
	// Output:
	// 777 true
}
