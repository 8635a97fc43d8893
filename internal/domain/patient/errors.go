package patient

import "errors"

// Domain errors for patient profiles

var (
	ErrNameTooShort         = errors.New("patient name must be at least 2 characters")
	ErrInvalidAge           = errors.New("age must be between 0 and 150")
	ErrInvalidGender        = errors.New("gender must be male, female or other")
	ErrInvalidHeight        = errors.New("height must be between 50 and 300 cm")
	ErrInvalidWeight        = errors.New("weight must be between 10 and 500 kg")
	ErrInvalidDosha         = errors.New("unknown dosha")
	ErrInvalidCalorieTarget = errors.New("calorie target must be positive")
)
