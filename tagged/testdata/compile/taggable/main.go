package main

import "github.com/anchore/newtype/tagged"

func describe[T tagged.Taggable](t T) string {
	return t.InnerTypeName()
}

func main() {
	_ = describe(42)
}
