// Package shop holds the screen state of the example shop: the checkout
// and summary view-models that turn payment results into one-shot
// navigation events.
package shop

// Request codes the shop launches payment flows with
const (
	RequestCodePayment = 1
	RequestCodeEdit    = 2
)

// MessageSomethingWentWrong is shown when payment details cannot be loaded
const MessageSomethingWentWrong = "Something went wrong. Please try again"

// ResourceStatus is the loading state of data shown on a screen
type ResourceStatus int

const (
	StatusLoading ResourceStatus = iota
	StatusSuccess
	StatusError
)

func (s ResourceStatus) String() string {
	switch s {
	case StatusLoading:
		return "LOADING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Resource is data a screen renders together with its loading state
type Resource[T any] struct {
	Status  ResourceStatus
	Data    T
	Message string
}

func Loading[T any]() Resource[T] {
	return Resource[T]{Status: StatusLoading}
}

func Success[T any](data T) Resource[T] {
	return Resource[T]{Status: StatusSuccess, Data: data}
}

func Failure[T any](message string) Resource[T] {
	return Resource[T]{Status: StatusError, Message: message}
}
