package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
	})
}

// SuccessWithMessage trả về response thành công kèm message riêng
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created trả về response 201 khi tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Tạo mới thành công",
		Data:    data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// BadRequestWithData trả về response lỗi kèm data mô tả lý do
// (ví dụ {"reason": "sold_out"})
func BadRequestWithData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Message: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: "Không tìm thấy",
	})
}
