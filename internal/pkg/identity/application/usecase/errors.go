package usecase

import "fmt"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("identity use case persistence error")

// ErrInvalidCredentials is returned on any login failure. Unknown email and
// wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")
