package change_status

// Request модель запроса на смену статуса
type Request struct {
	CompanyID string
	BookingID string
	Status    string  // Целевой статус
	Notes     *string // nil = заметки не меняются
}
