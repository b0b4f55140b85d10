package apperr

import "errors"

// Kind 业务错误分类（传输层据此映射状态码）
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindAuth
	KindInternal
)

// 对外 error 字段的稳定文案（与响应体 {error, message} 对应）
const (
	CodeWeakPassword      = "Weak password"
	CodeInvalidEmail      = "Invalid email"
	CodeUserExists        = "User already exists"
	CodeUserNotFound      = "User not found"
	CodeInvalidPassword   = "Invalid password"
	CodeInvalidFields     = "Invalid fields"
	CodeInvalidName       = "Invalid name"
	CodeProductExists     = "Product already exists"
	CodeProductNotFound   = "Product not found"
	CodeInvalidFieldIndex = "Invalid field index"
	CodeTypeMismatch      = "Type mismatch"
	CodeBlankValue        = "Blank value"
	CodeSelfReference     = "Self reference"
	CodeTxNotFound        = "Transaction not found"
	CodeUnauthorized      = "Unauthorized"
	CodeInternal          = "Internal error"
)

type Error struct {
	Kind    Kind
	Code    string // 响应体 error 字段
	Message string // 响应体 message 字段
	Err     error  // 底层错误（不外泄，只进日志）
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error { return New(KindValidation, code, message) }
func Conflict(code, message string) *Error   { return New(KindConflict, code, message) }
func NotFound(code, message string) *Error   { return New(KindNotFound, code, message) }
func Auth(code, message string) *Error       { return New(KindAuth, code, message) }

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, Err: err}
}

// KindOf 取分类；非 *Error 一律按 Internal 处理
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf 取稳定错误码；非 *Error 返回通用 Internal 文案
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
