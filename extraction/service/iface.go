//go:generate mockery --name ErrorReporter --output ./mocks --outpkg mocks --case=underscore
package service

// ErrorReporter forwards fatal query failures to an external error sink.
type ErrorReporter interface {
	Report(err error, stack []byte)
}
