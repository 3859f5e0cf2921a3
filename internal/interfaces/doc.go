// Package interfaces holds compile-time checks that the library's concrete
// types satisfy the interfaces their consumers declare.
package interfaces
