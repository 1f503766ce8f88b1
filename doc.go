// Package lvlinalg is a bounded linear-algebra engine for matrices of at most
// 5×5, over exact rationals or float64, sharing one generic implementation.
//
// Subpackages:
//
//	scalar/  Rational and Float values and the Field constraint they satisfy
//	matrix/  Dense[T] and every algorithm: REF/RREF, rank, determinant,
//	         inverse, Gram-Schmidt, QR, eigenvalues, diagonalization
//	stats/   mean, sample variance, standard deviation, column covariance
//	         and correlation
//	textio/  literal parsing, fixed-width display, YAML session files
//	cli/     the cobra command tree behind cmd/lvlinalg
//
// Quick example:
//
//	a, _ := textio.ParseMatrix[scalar.Rational]("2 1; 1 1")
//	inv, _ := matrix.Inverse(a)
//	fmt.Print(textio.Format(inv))
//	//   [        1        -1 ]
//	//   [       -1         2 ]
//
//	go install github.com/katalvlaran/lvlinalg/cmd/lvlinalg@latest
package lvlinalg
