package domain

// Page параметры постраничной выборки
type Page struct {
	Number int // Номер страницы, начиная с 1
	Limit  int // Размер страницы
}

// NewPage нормализует номер и размер страницы
// Значения <= 0 заменяются значениями по умолчанию, limit ограничивается maxLimit
func NewPage(number, limit, defaultLimit, maxLimit int) Page {
	if number <= 0 {
		number = DefaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset возвращает смещение для SQL OFFSET
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages возвращает количество страниц для total записей
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
