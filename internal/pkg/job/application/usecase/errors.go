package usecase

import "fmt"

var ErrPersistence = fmt.Errorf("persistence failure")
