package main

import "github.com/anchore/newtype/tagged"

type userIDTag struct{}

func main() {
	var u tagged.Tagged[int, userIDTag] = 42
	_ = u
}
