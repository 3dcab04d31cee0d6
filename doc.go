// Package lvreg fits ordinary-least-squares models and prunes their
// predictors by backward stepwise selection, in pure Go on dense matrices.
//
// What is inside?
//
//	• Matrix core: generic Dense/Vector, LU (Crout, partial pivoting),
//	  QR (modified Gram–Schmidt), inverse and determinant
//	• Regression: least-squares fit by QR, prediction, coefficient t-tests,
//	  ANOVA summary (SSR, SSE, R², F)
//	• Student-t: the classic printed table or the exact distribution
//	• Stepwise selection: fit → test → prune until every coefficient counts
//	• Data loading: DuckDB or PostgreSQL queries straight into a design matrix
//
// Packages:
//
//	matrix/      Dense, Vector, LU, QR, Gram, PrependOnes
//	regression/  Engine: Fit, Predict, SignificanceTest, Summarize
//	tdist/       Distribution, Table, Exact
//	stepwise/    Selector, IndexMap, State, Policy
//	dataset/     Frame, NewFrame, Query, Open
//	cmd/lvreg    command-line host
//
// Quick example:
//
//	x, _ := matrix.PrependOnes(raw) // intercept column
//	res, err := stepwise.NewSelector(stepwise.WithProtected(0)).Run(x, y)
//	// res.Coefficients keep the original column indices of x
//
//	go get github.com/katalvlaran/lvreg
package lvreg
