package global_test

import (
	"fmt"

	"github.com/kbukum/deferred/global"
)

func Example() {
	var greeting global.Var[string]
	if err := greeting.Set("Hello World!"); err != nil {
		panic(err)
	}

	g, err := greeting.Lock()
	if err != nil {
		panic(err)
	}
	defer g.Unlock()
	fmt.Println(g.Get())
	// Output: Hello World!
}

func ExampleVar_Set() {
	counter := global.Named[int]("requests")
	fmt.Println(counter.Set(0) == nil)

	err := counter.Set(100)
	fmt.Println(err != nil)
	// Output:
	// true
	// true
}

func ExampleVar_TryLock() {
	counter := global.New[int]()
	counter.MustSet(0)

	held, _ := counter.Lock()
	if _, err := counter.TryLock(); err != nil {
		fmt.Println("busy")
	}
	held.Unlock()

	g, err := counter.TryLock()
	if err == nil {
		*g.Value()++
		fmt.Println(g.Get())
		g.Unlock()
	}
	// Output:
	// busy
	// 1
}
