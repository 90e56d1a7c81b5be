package entity

import (
	"time"

	"results_api/internal/domain/value"
)

// Result это сохранённая строка таблицы results. Списки хранятся текстом
// в том виде, в каком их прислал клиент.
type Result struct {
	ID          int64
	Name        string
	Phone       string
	CompanyName *string
	LikedItems  *string
	NopedItems  *string
	CreatedAt   time.Time
}

// Submission это новая запись до сохранения.
type Submission struct {
	Name    string
	Phone   string
	Company *string
	Liked   value.Items
	Noped   value.Items
}
