// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import (
	"encoding/json"
	"time"
)

// Result Сохранённый результат
type Result struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CompanyName *string   `json:"company_name"`
	LikedItems  *string   `json:"liked_items"`
	NopedItems  *string   `json:"noped_items"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveResultRequest Тело POST запроса
type SaveResultRequest struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Company string          `json:"company"`
	Liked   json.RawMessage `json:"liked"`
	Noped   json.RawMessage `json:"noped"`
}

// Message Ответ без данных
type Message struct {
	Message string `json:"message"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// Error Текст исходной ошибки
	Error string `json:"error,omitempty"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
