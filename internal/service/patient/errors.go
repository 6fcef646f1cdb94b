package patient

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidPatientType = errors.New("patient type must be fundacion or externo")
)
