// Package operations groups the math tools by family: arithmetic (abs, fabs,
// floor, ceil, fmod, factorial), exponential (exp, log, pow, sqrt) and
// trigonometric (sin, cos, tan, asin, acos, atan).
package operations
