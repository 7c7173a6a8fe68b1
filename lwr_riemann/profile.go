package lwr_riemann

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

type PieceKind uint8

const (
	ConstantPiece PieceKind = iota
	FanPiece
)

// Piece is the density law on one interval of xi = x/t
type Piece struct {
	Kind PieceKind
	Q    float64 // ConstantPiece density
	V    float64 // FanPiece speed limit
}

func (p Piece) At(xi float64) float64 {
	if p.Kind == FanPiece {
		return FanDensity(xi, p.V)
	}
	return p.Q
}

/*
Profile is the piecewise density q(xi) of a Riemann solution.

Breaks are non-decreasing, Pieces has one more entry than Breaks. Pieces[0] covers
(-inf, Breaks[0]), Pieces[i] covers [Breaks[i-1], Breaks[i]) and the last piece covers
[Breaks[n-1], +inf). A break point belongs to the piece on its right, so at a shock or
contact speed the profile returns the state behind the jump on the right, and a
zero width piece is never selected.

A Profile is never modified after construction and is safe for concurrent use.
*/
type Profile struct {
	Breaks []float64
	Pieces []Piece
}

func NewProfile(qLeft float64, waves []Wave) (pr *Profile, err error) {
	pr = &Profile{
		Pieces: []Piece{{Kind: ConstantPiece, Q: qLeft}},
	}
	addBreak := func(xi float64, p Piece) {
		pr.Breaks = append(pr.Breaks, xi)
		pr.Pieces = append(pr.Pieces, p)
	}
	for i, w := range waves {
		switch w.Type {
		case Shock, Contact:
			addBreak(w.Lo, Piece{Kind: ConstantPiece, Q: w.Right})
		case Rarefaction:
			addBreak(w.Lo, Piece{Kind: FanPiece, V: w.V})
			addBreak(w.Hi, Piece{Kind: ConstantPiece, Q: w.Right})
		default:
			err = fmt.Errorf("wave %d: unknown wave type %v", i, w.Type)
			return nil, err
		}
	}
	for i := 1; i < len(pr.Breaks); i++ {
		if pr.Breaks[i] < pr.Breaks[i-1] {
			err = fmt.Errorf("wave speeds out of order at break %d: %v > %v", i, pr.Breaks[i-1], pr.Breaks[i])
			return nil, err
		}
	}
	return
}

// Locate returns the index of the piece containing xi
func (pr *Profile) Locate(xi float64) int {
	return sort.Search(len(pr.Breaks), func(i int) bool {
		return pr.Breaks[i] > xi
	})
}

func (pr *Profile) At(xi float64) float64 {
	return pr.Pieces[pr.Locate(xi)].At(xi)
}

// Evaluate returns q(xi) for each sample, the samples need not be sorted
func (pr *Profile) Evaluate(xi []float64) (q []float64) {
	q = make([]float64, len(xi))
	for i, x := range xi {
		q[i] = pr.At(x)
	}
	return
}

func (pr *Profile) EvaluateVec(xi mat.Vector) (q *mat.VecDense) {
	var (
		N = xi.Len()
		d = make([]float64, N)
	)
	if N == 0 {
		return &mat.VecDense{}
	}
	for i := 0; i < N; i++ {
		d[i] = pr.At(xi.AtVec(i))
	}
	return mat.NewVecDense(N, d)
}
