package algebra_test

import (
	"fmt"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/word"
)

func ExampleEngine_Mul() {
	e := algebra.New(nil)

	ab := e.Mul(algebra.A, algebra.B)
	fmt.Println(e.Format(ab))
	fmt.Println(e.Mul(algebra.B, algebra.C) == algebra.D)
	// Output:
	// a(a,c)
	// true
}

func ExampleStore_Canonical() {
	s := algebra.NewStore()

	// (ad)^4 is trivial, so it interns to the identity handle.
	x := s.Canonical(word.MustParse("adadadad"))
	fmt.Println(x == algebra.I)
	// Output:
	// true
}

func ExampleTrail_Decode() {
	e := algebra.New(nil)
	tr := algebra.NewTrail()

	x := tr.Walk(e, word.MustParse("abad"))
	w, _ := tr.Decode(e, x)
	fmt.Println(w)
	// Output:
	// abad
}
