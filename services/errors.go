package services

import "errors"

// 业务态错误：控制器按错误表翻译成状态码，不往外漏细节
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrCheckedOut       = errors.New("checked out")
	ErrTooManyCheckouts = errors.New("too many checkouts")
	ErrOverdueBooks     = errors.New("overdue books")
	ErrNoCheckoutFound  = errors.New("no checkout found")
	ErrBookCheckedOut   = errors.New("book checked out")
	ErrRoleAlreadySet   = errors.New("user role has already been set")
	ErrUnknown          = errors.New("unknown error")
)
