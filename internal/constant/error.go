package constant

import "fmt"

// Error is an error that carries a response code.
type Error interface {
	error
	Code() int
	Message() string
	WithData(data interface{}) Error
	Data() interface{}
}

// CustomError is the default Error implementation.
type CustomError struct {
	code    int
	message string
	data    interface{}
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("code: %d, message: %s", e.code, e.message)
}

func (e *CustomError) Code() int {
	return e.code
}

func (e *CustomError) Message() string {
	return e.message
}

func (e *CustomError) WithData(data interface{}) Error {
	e.data = data
	return e
}

func (e *CustomError) Data() interface{} {
	return e.data
}

// NewError creates an Error whose message comes from ErrorMessages.
func NewError(code int) Error {
	if info, exists := ErrorMessages[code]; exists {
		return &CustomError{code: code, message: info.EN}
	}
	return &CustomError{code: code, message: "unknown error"}
}

// GetErrorInfo looks up the text of a code.
func GetErrorInfo(code int) (ErrorInfo, bool) {
	info, exists := ErrorMessages[code]
	return info, exists
}
