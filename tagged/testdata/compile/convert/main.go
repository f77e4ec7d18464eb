package main

import "github.com/anchore/newtype/tagged"

type userIDTag struct{}

type orderIDTag struct{}

func main() {
	o := tagged.New[orderIDTag](1)
	_ = tagged.Tagged[int, userIDTag](o)
}
