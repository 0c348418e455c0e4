package sizer

func Ptr[T any](v T) *T { return &v } // Ptr is a helper function to create a pointer to a value, making test setup cleaner.
