package v1

// Response wraps the data of every successful response.
type Response[T any] struct {
	Data T `json:"data"`
}

func respond[T any](data T) Response[T] {
	return Response[T]{Data: data}
}
