package ops

import (
	"math"
	"sort"

	"github.com/23skdu/bitwise/bitwise"
)

// Result is the outcome of an operation. Present is false when the operation
// produced no value (index out of range, zero has no highest bit, empty
// input).
type Result struct {
	Value   uint32
	Present bool
}

func some(v uint32) Result { return Result{Value: v, Present: true} }

func opt(v uint32, ok bool) Result { return Result{Value: v, Present: ok} }

type evalFunc func(args []uint32) (Result, error)

// Op describes a registered operation.
type Op struct {
	Name string
	// Params names the positional arguments. A variadic op takes any number
	// of arguments, including none.
	Params   []string
	Variadic bool
	// Width is the bit width of the first operand.
	Width uint32
	// Family groups algorithm variants that must agree.
	Family string
	Doc    string

	eval evalFunc
}

// Arity returns the number of positional arguments.
func (o Op) Arity() int { return len(o.Params) }

var registry = map[string]Op{}

func register(op Op) {
	if _, dup := registry[op.Name]; dup {
		panic("ops: duplicate operation " + op.Name)
	}
	if op.Width == 0 {
		op.Width = bitwise.Width32
	}
	registry[op.Name] = op
}

func init() {
	register(Op{
		Name: "power_of_two", Params: []string{"power"}, Family: "power",
		Doc: "2^power; overflow when power >= 32",
		eval: func(a []uint32) (Result, error) {
			v, err := bitwise.PowerOfTwo(a[0])
			if err != nil {
				return Result{}, err
			}
			return some(v), nil
		},
	})

	register(Op{
		Name: "binary_ones_count", Params: []string{"number"}, Family: "ones_count",
		Doc:  "set bits, scanning up to the highest set bit",
		eval: func(a []uint32) (Result, error) { return some(bitwise.BinaryOnesCount(a[0])), nil },
	})
	register(Op{
		Name: "binary_ones_count_sub_method", Params: []string{"number"}, Family: "ones_count",
		Doc:  "set bits, clearing the lowest set bit each step",
		eval: func(a []uint32) (Result, error) { return some(bitwise.BinaryOnesCountSub(a[0])), nil },
	})

	for name, fn := range map[string]func(uint32) (uint32, bool){
		"hob":          bitwise.HOB,
		"hob_thr":      bitwise.HOBThreshold,
		"hob_comp_pot": bitwise.HOBPowerCompare,
	} {
		register(Op{
			Name: name, Params: []string{"number"}, Family: "hob",
			Doc:  "index of the highest set bit",
			eval: func(a []uint32) (Result, error) { return opt(fn(a[0])), nil },
		})
	}

	for name, def := range map[string]struct {
		fn     func(uint32, uint32) (uint32, bool)
		family string
		doc    string
	}{
		"set_bit":               {bitwise.SetBit, "set", "set the bit at index"},
		"unset_bit":             {bitwise.UnsetBit, "unset", "clear the bit at index (subtraction)"},
		"unset_bit_xor":         {bitwise.UnsetBitXOR, "unset", "clear the bit at index (xor)"},
		"unset_bit_bitwise_not": {bitwise.UnsetBitNot, "unset", "clear the bit at index (and-not)"},
		"invert_bit":            {bitwise.InvertBit, "invert", "flip the bit at index"},
		"remove_bit":            {bitwise.RemoveBit, "remove", "delete the bit at index, compacting higher bits"},
		"consecutive_ones_entries_count": {bitwise.ConsecutiveOnesCount, "runs",
			"positions where a run of run_length ones starts"},
	} {
		params := []string{"number", "index"}
		if def.family == "runs" {
			params = []string{"number", "run_length"}
		}
		register(Op{
			Name: name, Params: params, Family: def.family, Doc: def.doc,
			eval: func(a []uint32) (Result, error) { return opt(def.fn(a[0], a[1])), nil },
		})
	}

	for name, fn := range map[string]func(uint32, uint32, uint32) (uint32, bool){
		"swap_bits":     bitwise.SwapBits,
		"swap_bits_xor": bitwise.SwapBitsXOR,
	} {
		register(Op{
			Name: name, Params: []string{"number", "index1", "index2"}, Family: "swap",
			Doc:  "exchange the bits at two indices",
			eval: func(a []uint32) (Result, error) { return opt(fn(a[0], a[1], a[2])), nil },
		})
	}

	register(Op{
		Name: "circular_shl", Params: []string{"byte", "count"}, Width: bitwise.Width8, Family: "rotate",
		Doc:  "rotate an 8-bit word left",
		eval: func(a []uint32) (Result, error) { return some(uint32(bitwise.CircularShl(uint8(a[0]), a[1]))), nil },
	})
	register(Op{
		Name: "circular_shr", Params: []string{"byte", "count"}, Width: bitwise.Width8, Family: "rotate",
		Doc:  "rotate an 8-bit word right",
		eval: func(a []uint32) (Result, error) { return some(uint32(bitwise.CircularShr(uint8(a[0]), a[1]))), nil },
	})

	register(Op{
		Name: "find_unique", Params: []string{"values"}, Variadic: true, Family: "unique",
		Doc:  "the value occurring an odd number of times",
		eval: func(a []uint32) (Result, error) { return opt(bitwise.FindUnique(a)), nil },
	})
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Names returns all registered operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered operations sorted by name.
func List() []Op {
	names := Names()
	list := make([]Op, len(names))
	for i, name := range names {
		list[i] = registry[name]
	}
	return list
}

// Family returns the operations of one variant family sorted by name.
func Family(family string) []Op {
	var out []Op
	for _, op := range List() {
		if op.Family == family {
			out = append(out, op)
		}
	}
	return out
}

func maxOperand(width uint32) uint32 {
	if width >= bitwise.Width32 {
		return math.MaxUint32
	}
	return 1<<width - 1
}

// Call validates args and runs the operation without recording metrics.
func (o Op) Call(args []uint32) (Result, error) {
	if err := o.Validate(args); err != nil {
		return Result{}, err
	}
	return o.eval(args)
}
