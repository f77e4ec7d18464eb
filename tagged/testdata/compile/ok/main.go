package main

import (
	"fmt"

	"github.com/anchore/newtype/tagged"
)

type userIDTag struct{}

type orderIDTag struct{}

type (
	UserID  = tagged.Tagged[int, userIDTag]
	OrderID = tagged.Tagged[int, orderIDTag]
)

func describe[T tagged.Taggable](t T) string {
	return t.InnerTypeName()
}

func main() {
	var u UserID = tagged.New[userIDTag](1)
	o := OrderID{}.From(1)
	fmt.Println(u == tagged.New[userIDTag](1), o.Get() == u.Get(), describe(u))
}
