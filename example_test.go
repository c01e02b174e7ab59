package custommath_test

import (
	"fmt"

	"github.com/GriffinCanCode/custommath"
)

func ExamplePow() {
	fmt.Println(custommath.Pow(2, 10))
	fmt.Println(custommath.Pow(2, -3))
	// Output:
	// 1024
	// 0.125
}

func ExampleFmod() {
	fmt.Println(custommath.Fmod(-7, 2))
	fmt.Println(custommath.Fmod(7, 0))
	// Output:
	// -1
	// NaN
}

func ExampleFactorial() {
	fmt.Println(custommath.Factorial(10))
	// Output: 3.6288e+06
}

func ExampleAsin() {
	fmt.Println(custommath.Asin(1) == custommath.Pi/2)
	fmt.Println(custommath.Asin(2))
	// Output:
	// true
	// NaN
}
