package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	num "github.com/Evan-Clegern/big-unsigned-nums"
	"github.com/davecgh/go-spew/spew"
)

// This is a cheap-and-nasty tool for poking at the limbs of a Uint while
// working on the carry and borrow logic. It applies one operation to a value
// and shows the limbs before and after, which is much easier to read than the
// decimal value when a borrow chain goes somewhere unexpected.

const usage = `Limb poker

Usage: <bits> <value> <op> <operand>

bits:    128, 192, 256 or 320
op:      add, sub, mul, lsh, rsh, and, or, xor
value, operand: uint64`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 4 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	value, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		return err
	}
	operand, err := strconv.ParseUint(args[3], 0, 64)
	if err != nil {
		return err
	}
	op := args[2]

	switch args[0] {
	case "128":
		return poke(num.U128From64(value), op, operand)
	case "192":
		return poke(num.U192From64(value), op, operand)
	case "256":
		return poke(num.U256From64(value), op, operand)
	case "320":
		return poke(num.U320From64(value), op, operand)
	default:
		return fmt.Errorf("bits must be 128, 192, 256 or 320")
	}
}

func poke[L num.LimbArray](u num.Uint[L], op string, operand uint64) error {
	fmt.Print("before: ")
	u.Print()

	by := num.From64[L](operand)

	var err error
	switch op {
	case "add":
		err = u.Add(by)
	case "sub":
		err = u.Sub(by)
	case "mul":
		err = u.Mul64(operand)
	case "lsh":
		u.Lsh(uint(operand))
	case "rsh":
		u.Rsh(uint(operand))
	case "and":
		u.And(by)
	case "or":
		u.Or(by)
	case "xor":
		u.Xor(by)
	default:
		return fmt.Errorf("unknown op %q", op)
	}

	// Failed ops are not rolled back, so the partial limbs are worth seeing
	// too:
	fmt.Print("after:  ")
	u.Print()
	fmt.Printf("value:  %d\n", u)
	spew.Dump(u.Limbs())

	return err
}
