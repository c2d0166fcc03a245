package decorator

// Decorator wraps an object of type T in another T, layering behavior
// before and/or after the inner object's own.
type Decorator[T any] interface {
	// Decorate wraps the underlying obj, adding some functionality.
	Decorate(obj T) T
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(obj T) T

// Decorate call f(obj).
func (f DecoratorFunc[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates the given object with all decorators. The first decorator
// becomes the outermost layer.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		obj = decorators[i].Decorate(obj)
	}
	return obj
}
