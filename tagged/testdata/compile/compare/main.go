package main

import "github.com/anchore/newtype/tagged"

type userIDTag struct{}

type orderIDTag struct{}

func main() {
	_ = tagged.New[userIDTag](1) == tagged.New[orderIDTag](1)
}
