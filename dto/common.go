package dto

import "hms/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// Layout ngày giờ dùng chung cho request/response của các màn hình
const DateTimeLayout = "02/01/2006 15:04"
