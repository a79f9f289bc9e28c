package lists

// IterateToSlice drains a channel of T or error into a slice.
//
// Stops and returns the first error sent on the channel.
func IterateToSlice[T any](ch <-chan any, target *[]T) error {
	for item := range ch {
		err, _ := item.(error)
		if err != nil {
			return err
		}
		*target = append(*target, item.(T))
	}
	return nil
}
