// Package link implements linked brushing between a scatter view of series
// and a histogram view of one scalar value per series.
//
// The package knows nothing about pixels. A view adapter renders series and
// bins with the opacities found in two Channels sets and reports pointer
// presses through a Resolver. The Coordinator turns resolved clicks into
// opacity updates on both sets:
//
//	pointer press -> view adapter -> Resolver -> Index -> Coordinator -> Channels
//
// A click on a series lights that series and the bin holding its value, a
// click on a bin lights the bin and all series whose value falls into it and
// a click on empty space resets everything to full visibility.
package link

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument is returned (wrapped) for malformed construction input.
var ErrInvalidArgument = errors.New("invalid argument")

// Index addresses one series or one bin. Valid indices are 0-based.
type Index int

// None is the miss sentinel: the click did not land on any element.
const None Index = -1

// Valid reports whether i addresses one of n elements.
func (i Index) Valid(n int) bool { return i >= 0 && int(i) < n }

func (i Index) String() string {
	if i == None {
		return "none"
	}
	return strconv.Itoa(int(i))
}

// Indices returns 0, 1, ..., n-1.
func Indices(n int) []Index {
	all := make([]Index, n)
	for i := range all {
		all[i] = Index(i)
	}
	return all
}

// complement returns all indices in [0,n) which are not in keep.
func complement(n int, keep []Index) []Index {
	in := make([]bool, n)
	for _, k := range keep {
		if k.Valid(n) {
			in[k] = true
		}
	}
	rest := make([]Index, 0, n)
	for i := 0; i < n; i++ {
		if !in[i] {
			rest = append(rest, Index(i))
		}
	}
	return rest
}
