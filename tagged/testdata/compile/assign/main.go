package main

import "github.com/anchore/newtype/tagged"

type userIDTag struct{}

type orderIDTag struct{}

func main() {
	var u tagged.Tagged[int, userIDTag] = tagged.New[orderIDTag](1)
	_ = u
}
