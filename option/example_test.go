package option_test

import (
	"fmt"

	"github.com/charmingruby/seqkit/option"
)

func ExampleOption_GetOrElse() {
	name := option.Some("gopher")
	fmt.Println(option.Map(name, func(s string) int { return len(s) }).GetOrElse(0))
	fmt.Println(option.None[string]().GetOrElse("anonymous"))
	// Output:
	// 6
	// anonymous
}
