package main

import "github.com/katalvlaran/lpclique/bnb"

func bnbResult(size int, clique ...int) bnb.Result {
	return bnb.Result{Size: size, Clique: clique}
}
